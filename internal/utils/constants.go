package utils

// EmptyString represents a reusable empty string constant.
const EmptyString = ""

// ErrorLogFormat defines the formatting string for error log messages.
const ErrorLogFormat = "Error: %v"

// LoggerInitializationFailedMessageFormat is used when the logger cannot be built.
const LoggerInitializationFailedMessageFormat = "logger initialization failed: %w"

// GitDirectoryName is the name of the Git repository directory.
const GitDirectoryName = ".git"
