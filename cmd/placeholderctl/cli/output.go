package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/muesli/reflow/wrap"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/postboard/placeholder_sdk_go/internal/httpx"
	"github.com/postboard/placeholder_sdk_go/pkg/model"
	"github.com/postboard/placeholder_sdk_go/pkg/textutil"
)

const bodyWrapWidth = 72

// emit prints v as JSON when --json is set and otherwise calls table.
func (a *app) emit(cmd *cobra.Command, v any, table func(w io.Writer)) error {
	out := cmd.OutOrStdout()
	if a.debug {
		spew.Fdump(cmd.ErrOrStderr(), v)
	}
	if a.asJSON {
		data, err := httpx.MarshalJSON(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}
	table(out)
	return nil
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader(header)
	return table
}

func (a *app) short(s string) string {
	return textutil.Truncate(s, a.maxWidth, textutil.DefaultSuffix)
}

func (a *app) postsTable(w io.Writer, posts []model.Post) {
	table := newTable(w, "ID", "User", "Title", "Body")
	for _, p := range posts {
		table.Append([]string{strconv.Itoa(p.ID), strconv.Itoa(p.UserID), a.short(p.Title), a.short(p.Body)})
	}
	table.Render()
}

func (a *app) computedTable(w io.Writer, posts []model.ComputedPost) {
	table := newTable(w, "ID", "Author", "Title")
	missing := color.New(color.FgYellow).Sprint("(unknown user)")
	for _, p := range posts {
		author := missing
		if p.User != nil {
			author = fmt.Sprintf("%s (@%s)", p.User.Name, p.User.Username)
		}
		table.Append([]string{strconv.Itoa(p.ID), author, a.short(p.Title)})
	}
	table.Render()
}

func (a *app) commentsTable(w io.Writer, comments []model.Comment) {
	table := newTable(w, "ID", "Post", "Email", "Name", "Body")
	for _, c := range comments {
		table.Append([]string{strconv.Itoa(c.ID), strconv.Itoa(c.PostID), c.Email, a.short(c.Name), a.short(c.Body)})
	}
	table.Render()
}

func (a *app) usersTable(w io.Writer, users []model.User) {
	table := newTable(w, "ID", "Username", "Name", "Email", "City", "Company")
	for _, u := range users {
		table.Append([]string{strconv.Itoa(u.ID), u.Username, u.Name, u.Email, u.Address.City, u.Company.Name})
	}
	table.Render()
}

func printPost(w io.Writer, p *model.Post) {
	heading := color.New(color.Bold)
	fmt.Fprintf(w, "%s %s\n", heading.Sprintf("#%d", p.ID), heading.Sprint(p.Title))
	fmt.Fprintf(w, "by user %d\n\n", p.UserID)
	fmt.Fprintln(w, wrap.String(p.Body, bodyWrapWidth))
}

func printComment(w io.Writer, c *model.Comment) {
	heading := color.New(color.Bold)
	fmt.Fprintf(w, "%s on post %d: %s <%s>\n\n", heading.Sprintf("#%d", c.ID), c.PostID, c.Name, c.Email)
	fmt.Fprintln(w, wrap.String(c.Body, bodyWrapWidth))
}

func printUser(w io.Writer, u *model.User) {
	heading := color.New(color.Bold)
	fmt.Fprintf(w, "%s %s (@%s)\n", heading.Sprintf("#%d", u.ID), heading.Sprint(u.Name), u.Username)
	fmt.Fprintf(w, "email:   %s\nphone:   %s\nwebsite: %s\n", u.Email, u.Phone, u.Website)
	ad := u.Address
	fmt.Fprintf(w, "address: %s, %s, %s %s (%s, %s)\n", ad.Street, ad.Suite, ad.City, ad.Zipcode, ad.Geo.Lat, ad.Geo.Lng)
	fmt.Fprintf(w, "company: %s\n", u.Company.Name)
	if u.Company.CatchPhrase != "" {
		fmt.Fprintln(w, wrap.String(fmt.Sprintf("         %q, %s", u.Company.CatchPhrase, u.Company.BS), bodyWrapWidth))
	}
}

func deleted(w io.Writer, kind string, id int) {
	fmt.Fprintf(w, "%s %s %d\n", color.New(color.FgGreen).Sprint("deleted"), kind, id)
}
