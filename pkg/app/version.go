package app

// Version is the current version of embedstudio.
const Version = "0.3.0"
