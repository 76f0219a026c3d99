package modkit

// Version is the current modkit release.
var Version = "0.1.0"
