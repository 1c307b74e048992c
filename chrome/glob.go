package chrome

// DebugMode enables verbose logging of layout changes and hit tests.
var DebugMode bool
