package session

import (
	"fmt"
	"strings"
)

const helpText = `**Available commands:**

- ` + "`search [query]`" + ` - Search for files
- ` + "`find [query]`" + ` - Search for files
- ` + "`cmd [query]`" + ` - Search for files
- ` + "`filter [type]`" + ` - Filter by file type (e.g., file, folder)
- ` + "`clear`" + ` - Clear terminal history
- ` + "`keywords`" + ` - Show detected keywords from last search
- ` + "`settings`" + ` - Open settings panel
- ` + "`help`" + ` - Show this help message`

const (
	settingsHint  = "Settings can be opened with ctrl+o, or edited in the config file."
	noKeywords    = "No keywords available. Try searching for something first."
	settingsSaved = "Settings updated successfully!"
)

func keywordsMessage(keywords []string) string {
	if len(keywords) == 0 {
		return noKeywords
	}
	return "Detected keywords from last search: " + strings.Join(keywords, ", ")
}

func activeFiltersMessage(f FilterSet) string {
	return "Active filters: " + f.String()
}

func unrecognizedMessage(input string) string {
	return fmt.Sprintf("Command not recognized: %s\nType \"help\" for available commands", input)
}

func searchingMessage(query string, filters []string) string {
	if len(filters) > 0 {
		return fmt.Sprintf(`Searching for "%s" with filters: %s...`, query, strings.Join(filters, ", "))
	}
	return fmt.Sprintf(`Searching for "%s"...`, query)
}

func resultsMessage(query string) string {
	return fmt.Sprintf(`Results for "%s":`, query)
}

func searchErrorMessage(query string, err error) string {
	return fmt.Sprintf(`Error searching for "%s": %v`, query, err)
}
