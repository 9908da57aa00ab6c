package view

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/gophdash/internal/client/models"
)

const (
	ProfileTitle = "User Profile"

	MsgNoUser = "No user data found"
)

func (r *Renderer) Profile(u models.User, ok bool) {
	if !ok {
		r.println()
		r.println(r.colorize(colorDim, MsgNoUser))
		r.println()
		return
	}

	r.section("Basic Information", [][2]string{
		{"Full Name", u.Name},
		{"Username", u.Username},
		{"User ID", fmt.Sprintf("#%d", u.ID)},
		{"Email", u.Email},
		{"Phone", u.Phone},
		{"Website", u.Website},
	})
	r.section("Address", [][2]string{
		{"Street Address", u.Address.Street + ", " + u.Address.Suite},
		{"City", u.Address.City},
		{"Zip Code", u.Address.Zipcode},
		{"Coordinates", fmt.Sprintf("Lat: %s, Lng: %s", u.Address.Geo.Lat, u.Address.Geo.Lng)},
	})
	r.section("Company Information", [][2]string{
		{"Company Name", u.Company.Name},
		{"Catch Phrase", fmt.Sprintf("%q", u.Company.CatchPhrase)},
		{"Business", u.Company.BS},
	})
}

func (r *Renderer) section(title string, fields [][2]string) {
	r.println(r.colorize(colorBold+colorCyan, title))
	r.println(strings.Repeat("-", len(title)))

	tw := tabwriter.NewWriter(r.w, 0, 0, columnGap, ' ', 0)
	for _, f := range fields {
		fmt.Fprintf(tw, "  %s\t%s\n", f[0], f[1])
	}
	tw.Flush()
	r.println()
}
