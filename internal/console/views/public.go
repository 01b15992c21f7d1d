package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"parcel_tracking/internal/models"
)

// Tracking is the result shown under the home page's track form.
type Tracking struct {
	TrackingID string
	Parcel     *models.Parcel
	Events     []models.ParcelEvent
}

func HomePage(f Frame, t Tracking) g.Node {
	return layout(f,
		H1(g.Text("Track your parcel")),
		Form(Method("get"), Action("/"),
			field("Tracking ID", "trackingId", "text", t.TrackingID, Required(), Placeholder("TRK...")),
			submit("Track"),
		),
		g.If(t.Parcel != nil, parcelDetails(t.Parcel, t.Events)),
	)
}

func parcelDetails(p *models.Parcel, events []models.ParcelEvent) g.Node {
	if p == nil {
		return nil
	}
	return Section(ID("parcel"),
		H2(g.Textf("Parcel %s", p.TrackingID)),
		Dl(
			Dt(g.Text("Status")), Dd(Class("status status-"+p.Status), g.Text(StatusLabel(p.Status))),
			Dt(g.Text("Current location")), Dd(g.Text(orDash(p.CurrentLocation))),
			Dt(g.Text("From")), Dd(g.Textf("%s, %s", p.SenderName, orDash(p.SenderAddress))),
			Dt(g.Text("To")), Dd(g.Textf("%s, %s", p.RecipientName, orDash(p.RecipientAddress))),
			Dt(g.Text("Service")), Dd(g.Text(StatusLabel(p.ServiceType))),
			Dt(g.Text("Estimated delivery")), Dd(g.Text(orDash(p.EstimatedDeliveryDate))),
			Dt(g.Text("Last update")), Dd(g.Text(formatTime(p.UpdatedAt))),
		),
		H3(g.Text("History")),
		g.If(len(events) == 0, P(g.Text("No tracking events yet."))),
		g.If(len(events) > 0, Ol(ID("history"),
			g.Map(events, func(e models.ParcelEvent) g.Node {
				return Li(
					Strong(g.Text(formatTime(e.OccurredAt))), g.Text(" "),
					g.Text(e.Description),
					g.If(e.Location != "", g.Textf(" (%s)", e.Location)),
				)
			}),
		)),
	)
}

// LoginPage renders the user login, or the admin login when admin is set.
func LoginPage(f Frame, admin bool, email string) g.Node {
	action, heading := "/login", "Login"
	if admin {
		action, heading = "/admin/login", "Admin login"
	}
	return layout(f,
		H1(g.Text(heading)),
		Form(Method("post"), Action(action),
			field("E-mail", "email", "email", email, Required()),
			field("Password", "password", "password", "", Required()),
			submit("Login"),
		),
		g.If(!admin, P(
			A(Href("/signup"), g.Text("Create an account")), g.Text(" · "),
			A(Href("/forgot-password"), g.Text("Forgot password?")),
		)),
	)
}

func SignupPage(f Frame) g.Node {
	return layout(f,
		H1(g.Text("Sign up")),
		Form(Method("post"), Action("/signup"),
			field("First name", "firstName", "text", "", Required()),
			field("Last name", "lastName", "text", "", Required()),
			field("E-mail", "email", "email", "", Required()),
			field("Password", "password", "password", "", Required()),
			submit("Register"),
		),
	)
}

func ForgotPasswordPage(f Frame) g.Node {
	return layout(f,
		H1(g.Text("Reset password")),
		Form(Method("post"), Action("/forgot-password"),
			field("E-mail", "email", "email", "", Required()),
			field("New password", "newPassword", "password", "", Required()),
			submit("Update password"),
		),
	)
}
