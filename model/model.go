package model

// TextRun is a positioned fragment of decoded text for a single page.
// X and Y are document-space coordinates of the run's origin. The decoder
// does not guarantee any ordering across the runs of a page.
type TextRun struct {
	Content string
	X, Y    float64
}

// Page is a single page of extracted text. Number is 1-indexed and strictly
// increasing within a result; Text is never empty in a returned page.
type Page struct {
	Text   string
	Number int
}
