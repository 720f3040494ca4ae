package version

// Version is reported by --version. Keep in sync with release tags.
const Version = "0.2.0"
