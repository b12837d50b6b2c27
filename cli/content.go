package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rpupo63/personal-blog/models"
	"github.com/spf13/cobra"
)

const defaultCommentUserID = 1

var (
	publishTitle       string
	publishDescription string
	publishContent     string
	publishContentFile string
	publishImage       string
	publishToken       string

	commentUserID  int64
	commentContent string
)

func init() {
	RootCmd.AddCommand(usersCmd, aboutCmd, postsCmd, postCmd, publishCmd, commentsCmd, commentCmd)

	publishCmd.Flags().StringVar(&publishTitle, "title", "", "post title")
	publishCmd.Flags().StringVar(&publishDescription, "description", "", "short summary shown in listings")
	publishCmd.Flags().StringVar(&publishContent, "content", "", "post body")
	publishCmd.Flags().StringVar(&publishContentFile, "content-file", "", "read the post body from a file")
	publishCmd.Flags().StringVar(&publishImage, "image", "", "cover image URL")
	publishCmd.Flags().StringVar(&publishToken, "token", "", "bearer token (defaults to $BLOG_TOKEN)")

	commentCmd.Flags().Int64Var(&commentUserID, "user", defaultCommentUserID, "id of the commenting user")
	commentCmd.Flags().StringVar(&commentContent, "content", "", "comment text")
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List user profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := requestContext(cmd)
		defer cancel()

		users, err := newClient().ListUsers(ctx)
		if err != nil {
			return fmt.Errorf("error getting users: %w", err)
		}
		renderUsers(cmd.OutOrStdout(), users)
		return nil
	},
}

var aboutCmd = &cobra.Command{
	Use:   "about [userID]",
	Short: "Show a user profile (the site owner by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := int64(1)
		if len(args) == 1 {
			id, err := parseID(args[0], "user id")
			if err != nil {
				return err
			}
			userID = id
		}

		ctx, cancel := requestContext(cmd)
		defer cancel()

		user, err := newClient().GetUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("error getting user %d: %w", userID, err)
		}
		renderUser(cmd.OutOrStdout(), user)
		return nil
	},
}

var postsCmd = &cobra.Command{
	Use:     "posts",
	Aliases: []string{"blog"},
	Short:   "List blog posts",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listPosts(cmd)
	},
}

func listPosts(cmd *cobra.Command) error {
	ctx, cancel := requestContext(cmd)
	defer cancel()

	posts, err := newClient().ListPosts(ctx)
	if err != nil {
		return fmt.Errorf("error getting posts: %w", err)
	}
	renderPosts(cmd.OutOrStdout(), posts)
	return nil
}

var postCmd = &cobra.Command{
	Use:   "post <postID>",
	Short: "Show a blog post with its comments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID, err := parseID(args[0], "post id")
		if err != nil {
			return err
		}

		ctx, cancel := requestContext(cmd)
		defer cancel()

		c := newClient()
		post, err := c.GetPost(ctx, postID)
		if err != nil {
			return fmt.Errorf("error getting post %d: %w", postID, err)
		}

		out := cmd.OutOrStdout()
		renderPost(out, post)
		fmt.Fprintln(out)

		// the post is still worth showing when its comments cannot be loaded
		comments, err := c.ListComments(ctx, postID)
		if err != nil {
			fmt.Fprintln(out, errorColor.Sprint("Failed to fetch comments."))
			return nil
		}
		renderComments(out, comments)
		return nil
	},
}

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish a new blog post (requires a token)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		token := publishToken
		if token == "" {
			token = os.Getenv("BLOG_TOKEN")
		}
		if token == "" {
			return errors.New("a token is required: pass --token or set BLOG_TOKEN")
		}

		content := publishContent
		if publishContentFile != "" {
			data, err := os.ReadFile(publishContentFile)
			if err != nil {
				return fmt.Errorf("error reading content file: %w", err)
			}
			content = string(data)
		}

		req := models.CreateBlogPostRequest{
			Title:       publishTitle,
			Description: publishDescription,
			Content:     content,
		}
		if publishImage != "" {
			req.Image = &publishImage
		}

		ctx, cancel := requestContext(cmd)
		defer cancel()

		post, err := newClient().CreatePost(ctx, token, req)
		if err != nil {
			return fmt.Errorf("error publishing post: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), headingColor.Sprintf("Published post %d", post.PostID))
		renderPost(cmd.OutOrStdout(), post)
		return nil
	},
}

var commentsCmd = &cobra.Command{
	Use:   "comments <postID>",
	Short: "List the comments of a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID, err := parseID(args[0], "post id")
		if err != nil {
			return err
		}

		ctx, cancel := requestContext(cmd)
		defer cancel()

		comments, err := newClient().ListComments(ctx, postID)
		if err != nil {
			return fmt.Errorf("error getting comments: %w", err)
		}
		renderComments(cmd.OutOrStdout(), comments)
		return nil
	},
}

var commentCmd = &cobra.Command{
	Use:   "comment <postID>",
	Short: "Comment on a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postID, err := parseID(args[0], "post id")
		if err != nil {
			return err
		}

		content := strings.TrimSpace(commentContent)
		if content == "" {
			return errors.New("--content is required")
		}

		ctx, cancel := requestContext(cmd)
		defer cancel()

		c := newClient()
		comments, err := c.ListComments(ctx, postID)
		if err != nil {
			return fmt.Errorf("error getting comments: %w", err)
		}

		comment, err := c.CreateComment(ctx, postID, models.CreateCommentRequest{UserID: commentUserID, Content: content})
		if err != nil {
			return fmt.Errorf("error submitting comment: %w", err)
		}

		// no re-fetch: the created comment is appended to what was loaded
		renderComments(cmd.OutOrStdout(), append(comments, *comment))
		return nil
	},
}
