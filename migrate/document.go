package migrate

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/rs/zerolog/log"

	"github.com/odootools/attrsmigrate/ast"
	"github.com/odootools/attrsmigrate/parser"
	"github.com/odootools/attrsmigrate/translate"
)

// document holds one view file while its four transform passes run. The
// file itself is only written after every pass has succeeded.
type document struct {
	path    string
	content string

	hasDeclaration  bool
	declDoubleQuote bool
}

func newDocument(path, content string) *document {
	return &document{path: path, content: content}
}

// transform runs the full pipeline and returns the rewritten document:
// placeholder protection, legacy-attribute conversion, column
// visibility conversion, then placeholder and declaration restoration.
func (d *document) transform() (string, error) {
	content := protectPlaceholders(d.content)

	d.hasDeclaration = strings.HasPrefix(content, "<?xml")
	d.declDoubleQuote = strings.Contains(content, `<?xml version="1.0"`)

	doc := etree.NewDocument()
	if err := doc.ReadFromString(content); err != nil {
		return "", fmt.Errorf("%s: parsing document: %w", d.path, err)
	}
	root := doc.Root()
	if root == nil {
		return "", fmt.Errorf("%s: document has no root element", d.path)
	}

	if err := d.convertAttrs(root); err != nil {
		return "", err
	}
	d.convertColumnInvisible(root)

	out, err := d.serialize(root)
	if err != nil {
		return "", fmt.Errorf("%s: serializing document: %w", d.path, err)
	}

	out = unprotectPlaceholders(out)
	if d.hasDeclaration && d.declDoubleQuote {
		out = restoreDeclarationQuotes(out)
	}
	return out, nil
}

// convertAttrs rewrites every element carrying the legacy attrs
// notation: either a direct attrs="..." attribute or an
// <attribute name="attrs"> override element.
func (d *document) convertAttrs(root *etree.Element) error {
	for _, e := range root.FindElements("//*[@attrs]") {
		if err := d.convertElement(e); err != nil {
			return err
		}
	}
	for _, e := range root.FindElements("//attribute[@name='attrs']") {
		if err := d.convertElement(e); err != nil {
			return err
		}
	}
	return nil
}

func (d *document) convertElement(e *etree.Element) error {
	if e.Tag == "attribute" {
		text := strings.TrimSpace(e.Text())
		if text == "" {
			log.Warn().
				Str("file", d.path).
				Str("element", e.GetPath()).
				Msg("attribute override has no attrs value, it must be adapted manually")
			return nil
		}

		mapping, err := d.parseMapping(e, text)
		if err != nil {
			return err
		}
		for i, entry := range mapping {
			if i == 0 {
				e.CreateAttr("name", entry.name)
				e.SetText(entry.expr)
				continue
			}
			// Further mapping entries get their own sibling override
			// element so none of them are dropped.
			sibling := etree.NewElement("attribute")
			sibling.CreateAttr("name", entry.name)
			sibling.SetText(entry.expr)
			e.Parent().InsertChildAt(e.Index()+i, sibling)
		}
		return nil
	}

	mapping, err := d.parseMapping(e, strings.TrimSpace(e.SelectAttrValue("attrs", "")))
	if err != nil {
		return err
	}
	for _, entry := range mapping {
		e.CreateAttr(entry.name, entry.expr)
	}
	e.RemoveAttr("attrs")
	return nil
}

type mappingEntry struct {
	name string
	expr string
}

// parseMapping parses a legacy mapping literal and translates each
// domain expression in it.
func (d *document) parseMapping(e *etree.Element, text string) ([]mappingEntry, error) {
	value, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%s: element %s: %w", d.path, e.GetPath(), err)
	}
	dict, ok := value.(ast.Dict)
	if !ok {
		return nil, fmt.Errorf("%s: element %s: attrs value %s is not a mapping", d.path, e.GetPath(), value.Repr())
	}

	entries := make([]mappingEntry, 0, len(dict.Entries))
	for _, entry := range dict.Entries {
		key, ok := entry.Key.(ast.Str)
		if !ok {
			return nil, fmt.Errorf("%s: element %s: mapping key %s is not a string", d.path, e.GetPath(), entry.Key.Repr())
		}
		expr, err := translate.Translate(entry.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: element %s: %w", d.path, e.GetPath(), err)
		}
		log.Info().
			Str("file", d.path).
			Str("from", entry.Value.Repr()).
			Str("to", expr).
			Msg("adapted expression")
		entries = append(entries, mappingEntry{name: key.Value, expr: expr})
	}
	return entries, nil
}

// convertColumnInvisible rewrites numeric invisible flags on fields
// inside tree views to the column_invisible attribute with an explicit
// True/False value.
func (d *document) convertColumnInvisible(root *etree.Element) {
	for _, tree := range root.FindElements("//tree") {
		for _, field := range tree.FindElements(".//field[@invisible]") {
			switch field.SelectAttrValue("invisible", "") {
			case "1":
				field.CreateAttr("column_invisible", "True")
			case "0":
				field.CreateAttr("column_invisible", "False")
			default:
				// Not a numeric flag; leave it alone.
				continue
			}
			field.RemoveAttr("invisible")
		}
	}
}

// serialize re-emits the document from its root element. The
// declaration, when present, is normalized to single quotes here; the
// caller restores double quotes afterwards if the original used them.
func (d *document) serialize(root *etree.Element) (string, error) {
	out := etree.NewDocument()
	out.WriteSettings = etree.WriteSettings{
		CanonicalText:    true,
		CanonicalAttrVal: true,
	}
	out.SetRoot(root.Copy())

	body, err := out.WriteToString()
	if err != nil {
		return "", err
	}
	if !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	if d.hasDeclaration {
		body = "<?xml version='1.0' encoding='utf-8'?>\n" + body
	}
	return body, nil
}
