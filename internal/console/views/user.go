package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"parcel_tracking"
	"parcel_tracking/internal/models"
)

// ParcelRow pairs a parcel with whether the viewer may rate it.
type ParcelRow struct {
	Parcel      models.Parcel
	Eligibility *parcel_tracking.FeedbackEligibility
}

type UserDashboard struct {
	Parcels  []ParcelRow
	Feedback []models.Feedback
	Support  []models.SupportRequest
}

func UserDashboardPage(f Frame, d UserDashboard) g.Node {
	return layout(f,
		H1(g.Textf("Welcome, %s", viewerName(f.Viewer))),

		Section(ID("my-parcels"),
			H2(g.Text("My parcels")),
			g.If(len(d.Parcels) == 0, P(g.Text("No parcels found for your e-mail."))),
			g.If(len(d.Parcels) > 0, Table(
				THead(Tr(Th(g.Text("Tracking ID")), Th(g.Text("Status")), Th(g.Text("Location")), Th(g.Text("Feedback")))),
				TBody(g.Map(d.Parcels, userParcelRow)),
			)),
		),

		Section(ID("my-feedback"),
			H2(g.Text("My feedback")),
			g.If(len(d.Feedback) == 0, P(g.Text("You have not left any feedback yet."))),
			g.If(len(d.Feedback) > 0, Ul(
				g.Map(d.Feedback, func(fb models.Feedback) g.Node {
					return Li(g.Textf("%s: %d/5 %s", fb.TrackingID, fb.Rating, fb.Remarks))
				}),
			)),
		),

		Section(ID("support"),
			H2(g.Text("Contact support")),
			Form(Method("post"), Action("/dashboard/support"),
				field("Subject", "subject", "text", ""),
				field("Tracking ID (optional)", "trackingId", "text", ""),
				field("Phone (optional)", "phone", "tel", ""),
				selectField("Issue type", "issueType", models.DefaultIssueType, models.IssueTypes),
				selectField("Priority", "priority", models.DefaultSupportPriority, models.SupportPriorities),
				textArea("Message", "message", ""),
				submit("Send"),
			),
			H3(g.Text("My requests")),
			g.If(len(d.Support) == 0, P(g.Text("No support requests."))),
			g.If(len(d.Support) > 0, Table(
				THead(Tr(Th(g.Text("Subject")), Th(g.Text("Status")), Th(g.Text("Response")), Th(g.Text("Created")))),
				TBody(g.Map(d.Support, func(r models.SupportRequest) g.Node {
					return Tr(
						Td(g.Text(orDash(r.Subject))),
						Td(g.Text(StatusLabel(r.Status))),
						Td(g.Text(orDash(r.AdminResponse))),
						Td(g.Text(formatTime(r.CreatedAt))),
					)
				})),
			)),
		),
	)
}

func userParcelRow(row ParcelRow) g.Node {
	p := row.Parcel
	return Tr(
		Td(A(Href("/?trackingId="+p.TrackingID), g.Text(p.TrackingID))),
		Td(g.Text(StatusLabel(p.Status))),
		Td(g.Text(orDash(p.CurrentLocation))),
		Td(feedbackCell(row)),
	)
}

func feedbackCell(row ParcelRow) g.Node {
	el := row.Eligibility
	if el == nil {
		return g.Text("-")
	}
	if !el.CanGiveFeedback {
		return g.Text(el.Reason)
	}
	return Form(Method("post"), Action("/dashboard/feedback"),
		Input(Type("hidden"), Name("trackingId"), Value(row.Parcel.TrackingID)),
		Select(Name("rating"),
			g.Map([]int{5, 4, 3, 2, 1}, func(n int) g.Node {
				return Option(Value(strconv.Itoa(n)), g.Textf("%d", n))
			}),
		),
		Input(Type("text"), Name("remarks"), Placeholder("Remarks")),
		submit("Rate"),
	)
}
