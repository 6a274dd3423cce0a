package catalog

// YAMLCatalog is the on-disk shape of a catalogue file.
type YAMLCatalog struct {
	Books []YAMLBook `yaml:"books"`
}

// YAMLBook is one catalogue entry. Title and author are free text.
type YAMLBook struct {
	Title       string `yaml:"title"`
	Author      string `yaml:"author"`
	PublishedOn string `yaml:"published_on" validate:"required,datetime=2006-01-02"`
}
