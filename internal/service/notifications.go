package service

import (
	"fmt"
	"strings"

	"parcel_tracking/internal/email"
	"parcel_tracking/internal/models"
)

const mailDateLayout = "Jan 02, 2006 15:04"

// FormatStatus renders a parcel status for humans.
func FormatStatus(status string) string {
	switch status {
	case "":
		return "Unknown"
	case models.StatusRegistered:
		return "Registered (Preparing for shipment)"
	case models.StatusInTransit:
		return "In Transit (On the way)"
	case models.StatusOutForDelivery:
		return "Out for Delivery (Arriving today)"
	case models.StatusDelivered:
		return "Delivered (Successfully completed)"
	case models.StatusReturned:
		return "Returned (Sent back to sender)"
	default:
		return status
	}
}

func statusSentence(status string) string {
	switch status {
	case models.StatusInTransit:
		return "Your parcel is now on its way! Expected delivery within 2-5 business days."
	case models.StatusOutForDelivery:
		return "Great news! Your parcel is out for delivery and should arrive today."
	case models.StatusDelivered:
		return "Your parcel has been delivered successfully!"
	case models.StatusReturned:
		return "Unfortunately, the parcel has been returned."
	}
	return ""
}

func section(b *strings.Builder, title string) {
	b.WriteString(title)
	b.WriteString(":\n")
	b.WriteString(strings.Repeat("=", len(title)+1))
	b.WriteString("\n")
}

// letter wraps body with a greeting and the service signature.
func letter(name, body, contact string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", name)
	b.WriteString(body)
	b.WriteString("\n\nBest regards,\nParcel Tracking System")
	if contact != "" {
		fmt.Fprintf(&b, "\nEmail: %s", contact)
	}
	return b.String()
}

func registrationRecipientBody(p models.Parcel) string {
	var b strings.Builder
	b.WriteString("You have received a new parcel shipment notification!\n\n")

	section(&b, "PARCEL DETAILS")
	fmt.Fprintf(&b, "Tracking ID: %s\n", p.TrackingID)
	fmt.Fprintf(&b, "From: %s (%s)\n", p.SenderName, p.SenderEmail)
	fmt.Fprintf(&b, "Description: %s\n", p.Description)
	fmt.Fprintf(&b, "Weight: %s\n", p.Weight)
	fmt.Fprintf(&b, "Dimensions: %s\n", p.Dimensions)
	fmt.Fprintf(&b, "Service Type: %s\n", p.ServiceType)
	fmt.Fprintf(&b, "Priority: %s\n", p.Priority)
	fmt.Fprintf(&b, "Shipped Date: %s\n", p.CreatedAt.Format(mailDateLayout))
	fmt.Fprintf(&b, "Current Status: %s\n\n", FormatStatus(p.Status))

	section(&b, "DELIVERY ADDRESS")
	b.WriteString(p.RecipientAddress + "\n\n")

	if strings.TrimSpace(p.DeliveryInstructions) != "" {
		section(&b, "DELIVERY INSTRUCTIONS")
		b.WriteString(p.DeliveryInstructions + "\n\n")
	}

	section(&b, "TRACKING")
	fmt.Fprintf(&b, "You can track this parcel using Tracking ID: %s\n", p.TrackingID)
	b.WriteString("Please keep this tracking ID for future reference.\n\n")

	if p.RequiresSignature {
		b.WriteString("IMPORTANT: This parcel requires a signature upon delivery.\n\n")
	}
	if p.IsFragile {
		b.WriteString("FRAGILE ITEM: Please handle with care.\n\n")
	}
	b.WriteString("Thank you for using our parcel delivery service!")
	return b.String()
}

func registrationSenderBody(p models.Parcel) string {
	var b strings.Builder
	b.WriteString("Your parcel has been successfully registered in our system!\n\n")

	section(&b, "REGISTRATION CONFIRMATION")
	fmt.Fprintf(&b, "Tracking ID: %s\n", p.TrackingID)
	fmt.Fprintf(&b, "Recipient: %s (%s)\n", p.RecipientName, p.RecipientEmail)
	fmt.Fprintf(&b, "Description: %s\n", p.Description)
	fmt.Fprintf(&b, "Service Type: %s\n", p.ServiceType)
	fmt.Fprintf(&b, "Priority: %s\n", p.Priority)
	fmt.Fprintf(&b, "Registration Date: %s\n\n", p.CreatedAt.Format(mailDateLayout))

	section(&b, "RECIPIENT NOTIFIED")
	fmt.Fprintf(&b, "The recipient (%s) has been automatically notified about this shipment.\n\n", p.RecipientEmail)

	section(&b, "TRACKING")
	fmt.Fprintf(&b, "You can track your parcel anytime using Tracking ID: %s\n", p.TrackingID)
	b.WriteString("You'll receive email updates whenever the parcel status changes.\n\n")
	b.WriteString("Thank you for choosing our parcel delivery service!")
	return b.String()
}

// RegistrationMessages builds the recipient notice and the sender confirmation.
func RegistrationMessages(p models.Parcel, contact string) []email.Message {
	return []email.Message{
		{
			To:      p.RecipientEmail,
			Subject: "New Parcel Shipped to You - Tracking ID: " + p.TrackingID,
			Body:    letter(p.RecipientName, registrationRecipientBody(p), contact),
		},
		{
			To:      p.SenderEmail,
			Subject: "Parcel Registration Confirmed - " + p.TrackingID,
			Body:    letter(p.SenderName, registrationSenderBody(p), contact),
		},
	}
}

func statusUpdateBody(p models.Parcel, oldStatus string, forRecipient bool) string {
	var b strings.Builder
	if forRecipient {
		b.WriteString("Your parcel status has been updated!\n\n")
	} else {
		b.WriteString("Your parcel status has been updated and the recipient has been notified.\n\n")
	}

	section(&b, "STATUS UPDATE")
	fmt.Fprintf(&b, "Tracking ID: %s\n", p.TrackingID)
	fmt.Fprintf(&b, "Previous Status: %s\n", FormatStatus(oldStatus))
	fmt.Fprintf(&b, "Current Status: %s\n", FormatStatus(p.Status))
	fmt.Fprintf(&b, "Last Updated: %s\n", p.UpdatedAt.Format(mailDateLayout))
	if strings.TrimSpace(p.CurrentLocation) != "" {
		fmt.Fprintf(&b, "Current Location: %s\n", p.CurrentLocation)
	}
	if strings.TrimSpace(p.Notes) != "" {
		fmt.Fprintf(&b, "Update Notes: %s\n", p.Notes)
	}
	b.WriteString("\n")

	if s := statusSentence(p.Status); s != "" {
		b.WriteString(s + "\n")
	}
	b.WriteString("\nThank you for using our parcel delivery service!")
	return b.String()
}

// StatusUpdateMessages builds the status-change notices for recipient and sender.
func StatusUpdateMessages(p models.Parcel, oldStatus, contact string) []email.Message {
	subject := "Parcel Status Update - " + p.TrackingID
	return []email.Message{
		{
			To:      p.RecipientEmail,
			Subject: subject,
			Body:    letter(p.RecipientName, statusUpdateBody(p, oldStatus, true), contact),
		},
		{
			To:      p.SenderEmail,
			Subject: "Your " + subject,
			Body:    letter(p.SenderName, statusUpdateBody(p, oldStatus, false), contact),
		},
	}
}

// FeedbackAdminMessage tells the administrator about a new rating.
// Replies go to the customer.
func FeedbackAdminMessage(f models.Feedback, adminEmail string) email.Message {
	var subject string
	switch {
	case f.IsLowRating():
		subject = "LOW RATING - "
	default:
		subject = "FEEDBACK - "
	}
	subject += fmt.Sprintf("%d/5 for parcel %s", f.Rating, f.TrackingID)

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\n", f.UserEmail)
	fmt.Fprintf(&b, "Tracking ID: %s\n", f.TrackingID)
	fmt.Fprintf(&b, "Rating: %d/5\n\n", f.Rating)
	if f.HasRemarks() {
		b.WriteString("Message:\n")
		b.WriteString(f.Remarks)
	}
	return email.Message{To: adminEmail, ReplyTo: f.UserEmail, Subject: subject, Body: b.String()}
}

func formatIssueType(t string) string {
	switch strings.ToUpper(t) {
	case "":
		return "General"
	case "TRACKING_ISSUE":
		return "Tracking Issue"
	case "DELIVERY_PROBLEM":
		return "Delivery Problem"
	case "BILLING_QUESTION":
		return "Billing Question"
	case "TECHNICAL_ISSUE":
		return "Technical Issue"
	case "ACCOUNT_HELP":
		return "Account Help"
	case "COMPLAINT":
		return "Complaint"
	case "SUGGESTION":
		return "Suggestion"
	case "OTHER":
		return "Other"
	default:
		return t
	}
}

func formatPriority(p string) string {
	switch strings.ToUpper(p) {
	case "HIGH":
		return "High"
	case "LOW":
		return "Low"
	case "URGENT":
		return "Urgent"
	default:
		return "Medium"
	}
}

func isHighPriority(p string) bool {
	return strings.EqualFold(p, "HIGH") || strings.EqualFold(p, "URGENT")
}

// SupportAdminMessage forwards a support request to the administrator.
func SupportAdminMessage(r models.SupportRequest, adminEmail string) email.Message {
	var subject strings.Builder
	switch {
	case strings.EqualFold(r.Priority, "HIGH"):
		subject.WriteString("HIGH PRIORITY - ")
	case strings.EqualFold(r.Priority, "URGENT"):
		subject.WriteString("URGENT - ")
	}
	if strings.TrimSpace(r.IssueType) != "" {
		subject.WriteString(strings.ToUpper(r.IssueType) + " - ")
	}
	if strings.TrimSpace(r.Subject) != "" {
		subject.WriteString(r.Subject)
	} else {
		subject.WriteString("Support Request from " + r.Name)
	}

	var b strings.Builder
	b.WriteString("NEW SUPPORT REQUEST\n")
	b.WriteString("===================\n\n")

	section(&b, "USER INFORMATION")
	fmt.Fprintf(&b, "Name: %s\n", r.Name)
	fmt.Fprintf(&b, "Email: %s\n", r.Email)
	if strings.TrimSpace(r.Phone) != "" {
		fmt.Fprintf(&b, "Phone: %s\n", r.Phone)
	}
	fmt.Fprintf(&b, "Submitted: %s\n\n", r.CreatedAt.Format(mailDateLayout))

	section(&b, "REQUEST DETAILS")
	fmt.Fprintf(&b, "Issue Type: %s\n", formatIssueType(r.IssueType))
	fmt.Fprintf(&b, "Priority: %s\n", formatPriority(r.Priority))
	if strings.TrimSpace(r.Subject) != "" {
		fmt.Fprintf(&b, "Subject: %s\n", r.Subject)
	}
	b.WriteString("\n")

	section(&b, "MESSAGE")
	b.WriteString(r.Message + "\n\n")
	if strings.TrimSpace(r.TrackingID) != "" {
		fmt.Fprintf(&b, "Related Tracking ID: %s\n\n", r.TrackingID)
	}
	b.WriteString("Please reply to this email to respond to the user.\n")
	fmt.Fprintf(&b, "User's email: %s", r.Email)

	return email.Message{To: adminEmail, ReplyTo: r.Email, Subject: subject.String(), Body: b.String()}
}

// SupportConfirmationMessage acknowledges a support request to the customer.
func SupportConfirmationMessage(r models.SupportRequest, contact string) email.Message {
	var b strings.Builder
	b.WriteString("Thank you for contacting support! We have received your support request and our team will get back to you soon.\n\n")

	section(&b, "YOUR REQUEST DETAILS")
	fmt.Fprintf(&b, "Submitted: %s\n", r.CreatedAt.Format(mailDateLayout))
	if strings.TrimSpace(r.Subject) != "" {
		fmt.Fprintf(&b, "Subject: %s\n", r.Subject)
	}
	if strings.TrimSpace(r.IssueType) != "" {
		fmt.Fprintf(&b, "Issue Type: %s\n", r.IssueType)
	}
	fmt.Fprintf(&b, "\nYour Message:\n%s\n\n", r.Message)

	section(&b, "RESPONSE TIME")
	if isHighPriority(r.Priority) {
		b.WriteString("Priority Level: High\nExpected Response: Within 2-4 hours\n\n")
	} else {
		b.WriteString("Priority Level: Normal\nExpected Response: Within 24 hours\n\n")
	}
	b.WriteString("Our support team will review your request and respond directly to this email address.\n\n")
	b.WriteString("If you have any urgent concerns, please don't hesitate to reach out to us again.")

	return email.Message{
		To:      r.Email,
		Subject: "Support Request Received - We'll Get Back to You Soon",
		Body:    letter(r.Name, b.String(), contact),
	}
}

// TestMessage verifies the delivery path end to end.
func TestMessage(adminEmail string) email.Message {
	return email.Message{
		To:      adminEmail,
		Subject: "Email Configuration Test",
		Body:    "This is a test email to verify email configuration is working.",
	}
}
