// Package utils exposes reusable helpers consumed by multiple commands.
//
// It houses the ConfigurationLoader built on Viper and the LoggerFactory that
// writes zap logs to standard output and a rotating log file.
package utils
