package constants

// DateTimeFormat is used when listing mood history
const DateTimeFormat = "2006-01-02 15:04"
