package models

// ============================================================================
// DISPLAY CONSTANTS
// ============================================================================

// DateLayout is the date format accepted by --due flags and shown in listings
const DateLayout = "2006-01-02"

// NoDueDateLabel is displayed for tasks without a due date
const NoDueDateLabel = "no date"
