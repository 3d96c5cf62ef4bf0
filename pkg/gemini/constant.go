package gemini

// BaseURL is the Gemini Generate Content API base URL.
const BaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.0-flash"

// DefaultTemperature is used when the caller does not set one.
const DefaultTemperature = 0.7
