package sgrep

// Team is a small integer team identifier, read from the footer record when
// present. Older files may lack team data entirely.
type Team int
