package registry

import (
	"embed"
	"fmt"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Catalog renders label message IDs into display text.
type Catalog struct {
	lang      language.Tag
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
}

// NewCatalog creates an empty catalog for lang. Message files are added with
// AddMessages.
func NewCatalog(lang language.Tag) *Catalog {
	bundle := i18n.NewBundle(lang)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return &Catalog{
		lang:      lang,
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, lang.String()),
	}
}

// DefaultCatalog returns the built-in English labels.
func DefaultCatalog() (*Catalog, error) {
	c := NewCatalog(language.English)
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, NewConfigurationError("load_catalog", err)
	}
	for _, e := range entries {
		name := path.Join("locales", e.Name())
		data, err := localeFS.ReadFile(name)
		if err != nil {
			return nil, NewConfigurationError("load_catalog", err)
		}
		if err := c.AddMessages(e.Name(), data); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// AddMessages parses a go-i18n message file. The name carries the language
// and format, e.g. "active.en.toml".
func (c *Catalog) AddMessages(name string, data []byte) error {
	if _, err := c.bundle.ParseMessageFileBytes(data, name); err != nil {
		return NewConfigurationError("load_catalog", fmt.Errorf("%s: %w", name, err))
	}
	return nil
}

// Language returns the catalog language.
func (c *Catalog) Language() language.Tag {
	return c.lang
}

// Label returns the display text for a message ID.
func (c *Catalog) Label(id string) (string, error) {
	text, err := c.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return "", NewConfigurationError("label", fmt.Errorf("%s: %w", id, err))
	}
	return text, nil
}
