// File: doc.go
// Title: Package Documentation for log
// Description: Package log provides the leveled, structured logger used by
//              pyutils. Library packages log sparingly at debug level on
//              failure paths; the pyutils command configures format and
//              level from its settings.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
//
// Usage:
//   logger := log.NewWithConfig(log.Config{
//     Level:  log.LevelDebug,
//     Format: log.FormatText,
//     Output: os.Stderr,
//     Name:   "filex",
//   })
//   logger.Debug("read failed", log.String("path", path))
//
// Loggers are immutable: With* methods return a derived copy.
package log
