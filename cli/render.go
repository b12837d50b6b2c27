package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/rpupo63/personal-blog/models"
)

var (
	headingColor = color.New(color.FgHiGreen, color.Bold)
	mutedColor   = color.New(color.FgHiBlack)
	errorColor   = color.New(color.FgHiRed)
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("Jan 2, 2006 15:04")
}

func renderUsers(w io.Writer, users []models.UserProfile) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No users")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Name", "Email", "Links"})
	for _, u := range users {
		table.Append([]string{strconv.FormatInt(u.UserID, 10), u.Name, u.Email, u.SocialMediaLinks})
	}
	table.Render()
}

func renderUser(w io.Writer, user *models.UserProfile) {
	fmt.Fprintln(w, headingColor.Sprint(user.Name))
	fmt.Fprintln(w, mutedColor.Sprint(user.Email))
	if user.Bio != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, user.Bio)
	}
	if user.SocialMediaLinks != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Links:", user.SocialMediaLinks)
	}
}

func renderPosts(w io.Writer, posts []models.BlogPost) {
	if len(posts) == 0 {
		fmt.Fprintln(w, "No posts yet")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Title", "Description", "Published"})
	for _, p := range posts {
		table.Append([]string{strconv.FormatInt(p.PostID, 10), p.Title, p.Description, formatTime(p.CreatedDate)})
	}
	table.Render()
}

func renderPost(w io.Writer, post *models.BlogPost) {
	fmt.Fprintln(w, headingColor.Sprint(post.Title))
	fmt.Fprintln(w, mutedColor.Sprintf("%s · updated %s", formatTime(post.CreatedDate), formatTime(post.UpdatedDate)))
	if post.Image != nil {
		fmt.Fprintln(w, mutedColor.Sprint(*post.Image))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, post.Description)
	fmt.Fprintln(w)
	fmt.Fprintln(w, post.Content)
}

func renderComments(w io.Writer, comments []models.Comment) {
	fmt.Fprintln(w, headingColor.Sprint("Comments"))
	if len(comments) == 0 {
		fmt.Fprintln(w, "No comments yet. Be the first to comment!")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "User", "Comment", "Posted"})
	for _, c := range comments {
		table.Append([]string{
			strconv.FormatInt(c.CommentID, 10),
			strconv.FormatInt(c.UserID, 10),
			c.Content,
			formatTime(c.CreatedDate),
		})
	}
	table.Render()
}
