package main

// Default limits for CLI commands.
const (
	DefaultHistoryLimit = 20
)

// Content formats accepted by --format.
var validFormats = []string{"auto", "json", "yaml", "yml", "csv", "ini"}

func isValidFormat(format string) bool {
	for _, f := range validFormats {
		if f == format {
			return true
		}
	}
	return false
}
