package pages

import (
	"fmt"
	"net/url"
	"strconv"

	"agenz_site/models"
	. "agenz_site/templates/components"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// AdminLeadsView is the data behind the lead archive page
type AdminLeadsView struct {
	Submissions []models.LeadSubmission
	Total       int64
	Counts      map[string]int64
	FormType    string
	Status      string
	Page        int
	Limit       int
}

func (v AdminLeadsView) query(page int) string {
	q := url.Values{}
	if v.FormType != "" {
		q.Set("form_type", v.FormType)
	}
	if v.Status != "" {
		q.Set("status", v.Status)
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// AdminLeads lists archived submissions with their delivery status
func AdminLeads(p Page, v AdminLeadsView) g.Node {
	statuses := []string{models.DeliveryPending, models.DeliveryDelivered, models.DeliveryFailed, models.DeliverySkipped}
	if v.Limit <= 0 {
		v.Limit = 50
	}
	lastPage := int((v.Total + int64(v.Limit) - 1) / int64(v.Limit))

	return Layout(p,
		h.Section(
			h.Class("section admin"),
			h.Div(
				h.Class("container"),
				h.H1(g.Text("Lead submissions")),
				h.Div(
					h.Class("stat-grid"),
					g.Group(g.Map(statuses, func(s string) g.Node {
						return h.A(
							h.Class("stat status-"+s),
							h.Href("/admin/leads"+AdminLeadsView{FormType: v.FormType, Status: s}.query(0)),
							h.P(h.Class("stat-value"), g.Text(strconv.FormatInt(v.Counts[s], 10))),
							h.P(h.Class("stat-label"), g.Text(s)),
						)
					})),
				),
				h.Form(
					h.Class("admin-filters"),
					h.Method("get"),
					h.Action("/admin/leads"),
					h.Select(
						h.Name("form_type"),
						h.Option(h.Value(""), g.Text("All forms")),
						h.Option(h.Value(models.FormTypeLead), g.If(v.FormType == models.FormTypeLead, h.Selected()), g.Text("Lead form")),
						h.Option(h.Value(models.FormTypeContact), g.If(v.FormType == models.FormTypeContact, h.Selected()), g.Text("Contact form")),
					),
					h.Select(
						h.Name("status"),
						h.Option(h.Value(""), g.Text("Any status")),
						g.Group(g.Map(statuses, func(s string) g.Node {
							return h.Option(h.Value(s), g.If(v.Status == s, h.Selected()), g.Text(s))
						})),
					),
					h.Button(h.Type("submit"), h.Class("btn btn-secondary btn-sm"), g.Text("Filter")),
					h.A(h.Href("/admin/leads/export.xlsx"+v.query(0)), h.Class("btn btn-primary btn-sm"), g.Text("Download XLSX")),
				),
				h.Table(
					h.Class("admin-table"),
					h.THead(h.Tr(
						h.Th(g.Text("Received")),
						h.Th(g.Text("Form")),
						h.Th(g.Text("Name")),
						h.Th(g.Text("Email")),
						h.Th(g.Text("Phone")),
						h.Th(g.Text("Company")),
						h.Th(g.Text("Source")),
						h.Th(g.Text("Delivery")),
					)),
					h.TBody(g.Group(g.Map(v.Submissions, func(s models.LeadSubmission) g.Node {
						return h.Tr(
							h.Td(g.Text(s.CreatedAt.Format("2006-01-02 15:04"))),
							h.Td(g.Text(s.FormType)),
							h.Td(g.Text(s.Name)),
							h.Td(h.A(h.Href("mailto:"+s.Email), g.Text(s.Email))),
							h.Td(g.Text(s.Phone)),
							h.Td(g.Text(s.Company)),
							h.Td(g.Text(s.SourcePage)),
							h.Td(
								h.Span(h.Class("badge status-"+s.DeliveryStatus), g.Text(s.DeliveryStatus)),
								g.If(s.DeliveryAttempts > 1, g.Textf(" (%d attempts)", s.DeliveryAttempts)),
								g.If(s.LastError != "", h.P(h.Class("muted"), g.Text(s.LastError))),
							),
						)
					}))),
				),
				g.If(len(v.Submissions) == 0, h.P(h.Class("empty"), g.Text("No submissions yet."))),
				g.If(lastPage > 1, h.Nav(
					h.Class("pagination"),
					g.If(v.Page > 1, h.A(h.Href("/admin/leads"+v.query(v.Page-1)), g.Text("← Newer"))),
					h.Span(g.Text(fmt.Sprintf("Page %d of %d", v.Page, lastPage))),
					g.If(v.Page < lastPage, h.A(h.Href("/admin/leads"+v.query(v.Page+1)), g.Text("Older →"))),
				)),
			),
		),
	)
}
