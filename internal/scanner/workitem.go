package scanner

// WorkItem is a single wordlist entry and the URL built from it.
type WorkItem struct {
	Word string
	URL  string
}
