package integrations

// Romanizer turns Japanese text into a Latin-script rendering. The engine
// treats it as a best-effort collaborator: failure costs one optional field,
// never the record.
type Romanizer interface {
	Romanize(text string) (string, error)
}
