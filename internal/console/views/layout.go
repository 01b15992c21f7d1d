// Package views renders the console pages with gomponents.
package views

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"parcel_tracking/internal/models"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Flash kinds.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

type Flash struct {
	Kind    string
	Message string
}

// Viewer is the logged-in profile shown in the navigation.
type Viewer struct {
	Email string
	Name  string
	Role  string
}

func (v *Viewer) IsAdmin() bool { return v != nil && v.Role == models.RoleAdmin }

// Frame carries what every page needs besides its own content.
type Frame struct {
	Title   string
	Viewer  *Viewer
	Flashes []Flash
}

func layout(f Frame, body ...g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:    f.Title + " | ParcelTrack",
		Language: "en",
		Head: []g.Node{
			Script(Src(htmxSrc), g.Attr("defer")),
		},
		Body: []g.Node{
			hx.Boost("true"),
			navBar(f.Viewer),
			flashList(f.Flashes),
			Main(ID("content"), g.Group(body)),
		},
	})
}

func navBar(v *Viewer) g.Node {
	return Nav(Class("nav"),
		A(Href("/"), g.Text("Track")),
		g.If(v == nil, g.Group{
			A(Href("/login"), g.Text("Login")),
			A(Href("/signup"), g.Text("Sign up")),
			A(Href("/admin/login"), g.Text("Admin")),
		}),
		g.If(v != nil && !v.IsAdmin(), A(Href("/dashboard"), g.Text("My dashboard"))),
		g.If(v.IsAdmin(), A(Href("/admin"), g.Text("Admin dashboard"))),
		g.If(v != nil, g.Group{
			Span(Class("nav-user"), g.Textf("%s (%s)", viewerName(v), StatusLabel(viewerRole(v)))),
			Form(Method("post"), Action("/logout"), Class("inline"),
				Button(Type("submit"), g.Text("Logout")),
			),
		}),
	)
}

func viewerName(v *Viewer) string {
	if v == nil {
		return ""
	}
	if v.Name != "" {
		return v.Name
	}
	return v.Email
}

func viewerRole(v *Viewer) string {
	if v == nil {
		return ""
	}
	return v.Role
}

func flashList(fs []Flash) g.Node {
	if len(fs) == 0 {
		return nil
	}
	return Div(ID("alerts"),
		g.Map(fs, func(f Flash) g.Node {
			return Div(Class("alert alert-"+f.Kind), g.Attr("role", "alert"), g.Text(f.Message))
		}),
	)
}

// field renders a labelled input.
func field(label, name, typ, value string, extra ...g.Node) g.Node {
	return Div(Class("field"),
		Label(For(name), g.Text(label)),
		Input(ID(name), Name(name), Type(typ), Value(value), g.Group(extra)),
	)
}

func textArea(label, name, value string) g.Node {
	return Div(Class("field"),
		Label(For(name), g.Text(label)),
		Textarea(ID(name), Name(name), g.Attr("rows", "3"), g.Text(value)),
	)
}

// selectField renders a dropdown; labels come from StatusLabel.
func selectField(label, name, current string, options []string) g.Node {
	return Div(Class("field"),
		g.If(label != "", Label(For(name), g.Text(label))),
		Select(ID(name), Name(name),
			g.Map(options, func(o string) g.Node {
				return Option(Value(o), g.If(o == current, Selected()), g.Text(StatusLabel(o)))
			}),
		),
	)
}

func submit(text string) g.Node {
	return Button(Type("submit"), g.Text(text))
}

// postButton is a one-button form, optionally asking for confirmation first.
func postButton(action, text, confirm string) g.Node {
	return Form(Method("post"), Action(action), Class("inline"),
		g.If(confirm != "", hx.Confirm(confirm)),
		Button(Type("submit"), g.Text(text)),
	)
}

func statTile(label string, n int64) g.Node {
	return Div(Class("stat"),
		Div(Class("stat-value"), g.Text(Count(n))),
		Div(Class("stat-label"), g.Text(label)),
	)
}
