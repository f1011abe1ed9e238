package internal

// Version is the current proplay release
const Version = "0.3.0"
