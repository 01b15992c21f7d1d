package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"parcel_tracking/internal/models"
)

type AdminDashboard struct {
	ParcelStats    models.ParcelStats
	FeedbackStats  models.FeedbackStats
	Users          []models.User
	Parcels        []models.Parcel
	Query          string
	RecentFeedback []models.Feedback
	Support        []models.SupportRequest
	Attention      []models.Parcel
}

func idPath(prefix string, id int64, suffix string) string {
	return prefix + strconv.FormatInt(id, 10) + suffix
}

func AdminDashboardPage(f Frame, d AdminDashboard) g.Node {
	ps, fs := d.ParcelStats, d.FeedbackStats
	return layout(f,
		H1(g.Text("Admin dashboard")),

		Section(ID("stats"),
			H2(g.Text("Parcels")),
			Div(Class("stats"),
				statTile("Total", ps.TotalParcels),
				statTile(StatusLabel(models.StatusRegistered), ps.Registered),
				statTile(StatusLabel(models.StatusInTransit), ps.InTransit),
				statTile(StatusLabel(models.StatusOutForDelivery), ps.OutForDelivery),
				statTile(StatusLabel(models.StatusDelivered), ps.Delivered),
				statTile(StatusLabel(models.StatusReturned), ps.Returned),
			),
			H2(g.Text("Feedback")),
			Div(Class("stats"),
				statTile("Total", fs.TotalFeedback),
				statTile("High ratings", fs.HighRatingCount),
				statTile("Low ratings", fs.LowRatingCount),
				Div(Class("stat"),
					Div(Class("stat-value"), g.Text(Rating(fs.AverageRating))),
					Div(Class("stat-label"), g.Text("Average")),
				),
			),
			postButton("/admin/test-email", "Send test e-mail", ""),
		),

		Section(ID("attention"),
			H2(g.Text("Needing attention")),
			g.If(len(d.Attention) == 0, P(g.Text("Nothing is overdue."))),
			g.If(len(d.Attention) > 0, Ul(
				g.Map(d.Attention, func(p models.Parcel) g.Node {
					return Li(
						A(Href(idPath("/admin/parcels/", p.ID, "/edit")), g.Text(p.TrackingID)),
						g.Textf(" %s since %s", StatusLabel(p.Status), formatTime(p.UpdatedAt)),
					)
				}),
			)),
		),

		Section(ID("create-parcel"),
			H2(g.Text("Register a parcel")),
			Form(Method("post"), Action("/admin/parcels"),
				parcelFields(models.Parcel{}),
				submit("Add parcel"),
			),
		),

		Section(ID("parcels"),
			H2(g.Text("Parcels")),
			Form(Method("get"), Action("/admin"),
				field("Search", "q", "search", d.Query, Placeholder("tracking id, name or e-mail")),
				submit("Search"),
			),
			Table(
				THead(Tr(
					Th(g.Text("Tracking ID")), Th(g.Text("Sender")), Th(g.Text("Recipient")),
					Th(g.Text("Status")), Th(g.Text("Actions")),
				)),
				TBody(g.Map(d.Parcels, adminParcelRow)),
			),
		),

		Section(ID("users"),
			H2(g.Text("Users")),
			A(Href("/admin/users/new"), g.Text("Create user")),
			Table(
				THead(Tr(Th(g.Text("Name")), Th(g.Text("E-mail")), Th(g.Text("Role")), Th(g.Text("Actions")))),
				TBody(g.Map(d.Users, func(u models.User) g.Node {
					return Tr(
						Td(g.Text(u.FullName())),
						Td(g.Text(u.Email)),
						Td(g.Text(StatusLabel(u.Role))),
						Td(
							A(Href(idPath("/admin/users/", u.ID, "/edit")), g.Text("Edit")),
							postButton(idPath("/admin/users/", u.ID, "/delete"), "Delete", "Delete this user?"),
						),
					)
				})),
			),
		),

		Section(ID("feedback"),
			H2(g.Text("Recent feedback")),
			g.If(len(d.RecentFeedback) == 0, P(g.Text("No feedback yet."))),
			g.If(len(d.RecentFeedback) > 0, Table(
				THead(Tr(Th(g.Text("Parcel")), Th(g.Text("User")), Th(g.Text("Rating")), Th(g.Text("Remarks")), Th())),
				TBody(g.Map(d.RecentFeedback, func(fb models.Feedback) g.Node {
					return Tr(
						Td(g.Text(fb.TrackingID)),
						Td(g.Text(fb.UserEmail)),
						Td(g.Textf("%d/5", fb.Rating)),
						Td(g.Text(orDash(fb.Remarks))),
						Td(postButton(idPath("/admin/feedback/", fb.ID, "/delete"), "Delete", "Delete this feedback?")),
					)
				})),
			)),
		),

		Section(ID("support-requests"),
			H2(g.Text("Support requests")),
			g.If(len(d.Support) == 0, P(g.Text("No support requests."))),
			g.If(len(d.Support) > 0, Table(
				THead(Tr(Th(g.Text("From")), Th(g.Text("Subject")), Th(g.Text("Priority")), Th(g.Text("Status")))),
				TBody(g.Map(d.Support, supportRow)),
			)),
		),
	)
}

func adminParcelRow(p models.Parcel) g.Node {
	return Tr(
		Td(A(Href("/?trackingId="+p.TrackingID), g.Text(p.TrackingID))),
		Td(g.Text(p.SenderName)),
		Td(g.Text(p.RecipientName)),
		Td(
			Form(Method("post"), Action(idPath("/admin/parcels/", p.ID, "/status")), Class("inline"),
				selectField("", "status", p.Status, models.Statuses),
				Input(Type("text"), Name("currentLocation"), Placeholder("Location"), Value(p.CurrentLocation)),
				submit("Update"),
			),
		),
		Td(
			A(Href(idPath("/admin/parcels/", p.ID, "/edit")), g.Text("Edit")),
			postButton(idPath("/admin/parcels/", p.ID, "/delete"), "Delete", "Delete this parcel?"),
		),
	)
}

func supportRow(r models.SupportRequest) g.Node {
	return Tr(
		Td(g.Textf("%s <%s>", r.Name, r.Email)),
		Td(g.Text(orDash(r.Subject)), Div(Class("muted"), g.Text(r.Message))),
		Td(g.Text(StatusLabel(r.Priority))),
		Td(
			Form(Method("post"), Action(idPath("/admin/support/", r.ID, "/status")), Class("inline"),
				selectField("", "status", r.Status, models.SupportStatuses),
				Input(Type("text"), Name("adminResponse"), Placeholder("Response"), Value(r.AdminResponse)),
				submit("Save"),
			),
		),
	)
}

// parcelFields renders the editable parcel attributes, prefilled from p.
func parcelFields(p models.Parcel) g.Node {
	return g.Group{
		FieldSet(Legend(g.Text("Sender")),
			field("Name", "senderName", "text", p.SenderName, Required()),
			field("E-mail", "senderEmail", "email", p.SenderEmail, Required()),
			field("Phone", "senderPhone", "tel", p.SenderPhone),
			field("Address", "senderAddress", "text", p.SenderAddress),
		),
		FieldSet(Legend(g.Text("Recipient")),
			field("Name", "recipientName", "text", p.RecipientName, Required()),
			field("E-mail", "recipientEmail", "email", p.RecipientEmail, Required()),
			field("Phone", "recipientPhone", "tel", p.RecipientPhone),
			field("Address", "recipientAddress", "text", p.RecipientAddress),
		),
		FieldSet(Legend(g.Text("Package")),
			field("Description", "description", "text", p.Description),
			field("Weight (kg)", "weight", "text", p.Weight),
			field("Dimensions (LxWxH cm)", "dimensions", "text", p.Dimensions),
			field("Category", "category", "text", p.Category),
			field("Value", "value", "text", p.Value),
			selectField("Package size", "packageSize", p.PackageSize, []string{"", "SMALL", "MEDIUM", "LARGE", "EXTRA_LARGE"}),
			checkbox("Fragile", "isFragile", p.IsFragile),
			checkbox("Requires signature", "requiresSignature", p.RequiresSignature),
		),
		FieldSet(Legend(g.Text("Delivery")),
			selectField("Service", "serviceType", orDefault(p.ServiceType, models.ServiceStandard), models.ServiceTypes),
			selectField("Priority", "priority", orDefault(p.Priority, models.PriorityNormal), models.Priorities),
			field("Estimated delivery", "estimatedDeliveryDate", "date", p.EstimatedDeliveryDate),
			textArea("Delivery instructions", "deliveryInstructions", p.DeliveryInstructions),
			textArea("Notes", "notes", p.Notes),
		),
	}
}

func checkbox(label, name string, checked bool) g.Node {
	return Div(Class("field"),
		Label(
			Input(Type("checkbox"), Name(name), Value("true"), g.If(checked, Checked())),
			g.Text(" "+label),
		),
	)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func ParcelEditPage(f Frame, p models.Parcel) g.Node {
	return layout(f,
		H1(g.Textf("Edit parcel %s", p.TrackingID)),
		Form(Method("post"), Action(idPath("/admin/parcels/", p.ID, "")),
			parcelFields(p),
			submit("Save"),
		),
		A(Href("/admin"), g.Text("Back to dashboard")),
	)
}

// UserFormPage creates a user when u is nil and edits u otherwise.
func UserFormPage(f Frame, u *models.User) g.Node {
	action, heading, user := "/admin/users", "Create user", models.User{Role: models.RoleUser}
	if u != nil {
		action, heading, user = idPath("/admin/users/", u.ID, ""), "Edit user", *u
	}
	passwordLabel := "Password"
	if u != nil {
		passwordLabel = "New password (leave blank to keep)"
	}
	return layout(f,
		H1(g.Text(heading)),
		Form(Method("post"), Action(action),
			field("First name", "firstName", "text", user.FirstName, Required()),
			field("Last name", "lastName", "text", user.LastName, Required()),
			field("E-mail", "email", "email", user.Email, Required()),
			field(passwordLabel, "password", "password", "", g.If(u == nil, Required())),
			selectField("Role", "role", user.Role, []string{models.RoleUser, models.RoleAdmin}),
			submit("Save"),
		),
		A(Href("/admin"), g.Text("Back to dashboard")),
	)
}
