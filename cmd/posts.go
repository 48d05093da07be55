package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MichaelGloessl04/wpapihandler/wordpress"
)

var (
	postTitle   string
	postContent string
	postStatus  string
	postTags    []string
	noConfirm   bool
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <post-id>",
	Short: "Show a single post",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new post",
	Long: `Create a new post on the WordPress site.

Tags given with --tag are resolved to their ids, and tags that do not
exist yet are created on the way.`,
	RunE: runCreate,
}

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <post-id>",
	Short: "Permanently delete a post",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(deleteCmd)

	getCmd.Flags().BoolVar(&showHTML, "html", false, "print raw HTML content instead of plain text")

	createCmd.Flags().StringVar(&postTitle, "title", "", "post title")
	createCmd.Flags().StringVar(&postContent, "content", "", "post content (HTML)")
	createCmd.Flags().StringVar(&postStatus, "status", "draft", "post status (draft, publish, pending, private, future)")
	createCmd.Flags().StringSliceVar(&postTags, "tag", nil, "tags to attach to the post")

	deleteCmd.Flags().BoolVar(&noConfirm, "no-confirm", false, "skip confirmation prompt")
}

func runGet(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid post id '%s': must be an integer", args[0])
	}

	ctx := context.Background()
	post, err := client.GetPost(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("[%d] %s (%s)\n", post.ID, renderText(post.Title), post.Status)
	if len(post.Tags) > 0 {
		fmt.Printf("Tags: %s\n", strings.Join(post.Tags, ", "))
	}
	content := post.Content
	if !showHTML {
		content = renderText(content)
	}
	if content != "" {
		fmt.Println()
		fmt.Println(content)
	}

	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	post := wordpress.Post{
		Title:   postTitle,
		Content: postContent,
		Status:  wordpress.PostStatus(postStatus),
		Tags:    postTags,
	}

	ctx := context.Background()
	created, err := client.CreatePost(ctx, post)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Created post %d: %s (%s)\n", created.ID, renderText(created.Title), created.Status)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid post id '%s': must be an integer", args[0])
	}

	ctx := context.Background()
	post, err := client.GetPost(ctx, id)
	if err != nil {
		return err
	}

	if !noConfirm {
		fmt.Printf("Permanently delete post %d (%s)? This bypasses the trash. [y/N]: ", post.ID, renderText(post.Title))
		var response string
		fmt.Scanln(&response)
		if strings.ToLower(strings.TrimSpace(response)) != "y" {
			logger.Info().Msg("Deletion cancelled")
			return nil
		}
	}

	if err := client.DeletePost(ctx, id); err != nil {
		return err
	}

	fmt.Printf("✓ Deleted post %d\n", id)
	return nil
}
