// Package view renders user agent accessors as templ components.
//
// Each component calls Get on its accessor during Render, so a page that
// keeps one component value alive across renders only re-parses the agent
// when the ambient string changes.
package view

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/uakit/pkg/accessor"
	"github.com/dmitrymomot/uakit/pkg/useragent"
)

// Details renders the structured record as a definition list. Absent fields
// are omitted rather than printed as placeholders.
func Details(acc *accessor.Accessor[*useragent.Info]) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var info *useragent.Info
		if acc != nil {
			info = acc.Get()
		}
		if info == nil {
			info = useragent.Empty("")
		}

		var sb strings.Builder
		sb.WriteString(`<dl class="useragent"`)
		if kind := deviceClass(info); kind != "" {
			sb.WriteString(` data-device="`)
			sb.WriteString(templ.EscapeString(kind))
			sb.WriteString(`"`)
		}
		sb.WriteString(`>`)

		row(&sb, "Browser", join(info.Browser.Name, info.Browser.FullVersion))
		row(&sb, "Engine", join(info.Engine.Name, info.Engine.Version))
		row(&sb, "OS", join(info.OS.Name, info.OS.Version))
		row(&sb, "Device", join(info.Device.Vendor, info.Device.Model))
		row(&sb, "Type", info.Device.Type)
		row(&sb, "CPU", info.CPU.Architecture)

		sb.WriteString(`</dl>`)
		_, err := io.WriteString(w, sb.String())
		return err
	})
}

// Raw renders the unparsed user agent string inside a code element.
func Raw(acc *accessor.Accessor[string]) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var ua string
		if acc != nil {
			ua = acc.Get()
		}
		_, err := io.WriteString(w, `<code class="useragent">`+templ.EscapeString(ua)+`</code>`)
		return err
	})
}

// Render renders a component to a string.
func Render(ctx context.Context, c templ.Component) (string, error) {
	var sb strings.Builder
	if err := c.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func row(sb *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	sb.WriteString(`<dt>`)
	sb.WriteString(label)
	sb.WriteString(`</dt><dd>`)
	sb.WriteString(templ.EscapeString(value))
	sb.WriteString(`</dd>`)
}

func join(parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}

func deviceClass(info *useragent.Info) string {
	if info.IsDesktop() {
		return "desktop"
	}
	return info.Device.Type
}
