package docname

import (
	"fmt"
	"strings"
)

// MaxNameWords is the largest number of words an accepted name may have.
const MaxNameWords = 4

// BuildNamePrompt builds the prompt asking for a short descriptive file name.
func BuildNamePrompt(content string) string {
	return fmt.Sprintf("Generate a descriptive and unique name for a file based on the following content: %s. "+
		"The name should be concise, informative, and relevant to the content. Keep the name small, limit it to 3 words. "+
		"Please provide just the name, with a single option that you think is best, without any file extensions. "+
		"Respond with just the name and nothing else.", content)
}

// BuildCategoryPrompt builds the prompt asking for one of the categories.
func BuildCategoryPrompt(content string, categories Categories) string {
	list := "[" + categories.String() + "]"
	return fmt.Sprintf("Assign a general category from the predefined list %s to a file based on its content %s. "+
		"The category should be one of the following: %s. Do not assign a category that is not in this list. "+
		"Respond with just the category and nothing else.", list, content, list)
}

// CleanName trims whitespace and surrounding double quotes from a model reply.
func CleanName(reply string) string {
	return strings.Trim(strings.TrimSpace(reply), `"`)
}

// CleanCategory trims whitespace from a model reply.
func CleanCategory(reply string) string {
	return strings.TrimSpace(reply)
}

// AcceptName reports whether name is usable as a file name: between one
// and MaxNameWords words and free of path separators.
func AcceptName(name string) bool {
	n := len(strings.Fields(name))
	if n == 0 || n > MaxNameWords {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}
