package main

// Exit codes for the pyprune CLI.
const (
	ExitOK             = 0 // All files rewritten (or dry run completed).
	ExitInvalidArgs    = 1 // Invalid arguments, bad path, or refused commit.
	ExitPartialFailure = 2 // Some files failed, the rest were processed.
	ExitTotalFailure   = 3 // No file could be processed.
)
