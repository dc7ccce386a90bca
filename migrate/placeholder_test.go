package migrate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProtectPlaceholders(t *testing.T) {
	in := `[('stage_id', 'not in', [%(custom_module.new_request)d, %(custom_module.new_quotation)d])]`
	want := `[('stage_id', 'not in', ['%(custom_module.new_request)d', '%(custom_module.new_quotation)d'])]`
	require.Equal(t, want, protectPlaceholders(in))
}

func TestPlaceholderRoundTrip(t *testing.T) {
	docs := []string{
		"",
		"<odoo/>",
		`<field name="stage_id" attrs="{'invisible': [('stage_id', 'in', [%(mod.a)d])]}"/>`,
		`%(a.b)d %(c)d text %(x_y.z)d`,
		"no placeholders at all",
		`already quoted: '%(mod.a)d'`,
	}

	for _, doc := range docs {
		require.Equal(t, doc, unprotectPlaceholders(protectPlaceholders(doc)), "round trip of %q", doc)
	}
}

func TestUnprotectLeavesPlainQuotesAlone(t *testing.T) {
	in := `state in ['done', 'cancel']`
	require.Equal(t, in, unprotectPlaceholders(in))
}

func TestRestoreDeclarationQuotes(t *testing.T) {
	in := "<?xml version='1.0' encoding='utf-8'?>\n<odoo><field name='x'/></odoo>"
	want := "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<odoo><field name='x'/></odoo>"
	require.Equal(t, want, restoreDeclarationQuotes(in))
}

func TestRestoreDeclarationQuotesNoDeclaration(t *testing.T) {
	in := "<odoo><field name='x'/></odoo>"
	require.Equal(t, in, restoreDeclarationQuotes(in))
}
