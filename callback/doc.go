// Package callback turns redirect URIs delivered to the program into
// structured callback state.
//
// An Ingestor holds a single State value. Every successful ingestion replaces
// that value wholesale; an event without a usable URI leaves it untouched.
// Readers get immutable snapshots, and the install step is a single atomic
// pointer swap, so a reader on another goroutine never sees a half built
// record.
//
// Example:
//
//	ingestor := callback.New()
//	ingestor.IngestURL("myapp://callback?code=abc123&state=xyz")
//	if ingestor.HasData() {
//		code, _ := ingestor.Parameter("code")
//		fmt.Println(code)
//	}
//
// Query decoding follows application/x-www-form-urlencoded rules: a name
// without "=" decodes to an empty value, and when a name repeats the last
// value wins while the name keeps the position of its first occurrence.
package callback
