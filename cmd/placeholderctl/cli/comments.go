package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/postboard/placeholder_sdk_go/pkg/filter"
	"github.com/postboard/placeholder_sdk_go/pkg/model"
)

func (a *app) commentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "comments",
		Aliases: []string{"comment", "c"},
		Short:   "Work with comments",
	}

	var filters []string
	list := &cobra.Command{
		Use:   "list",
		Short: "List comments, optionally filtered with --where key=value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := filter.ParseAll(filters)
			if err != nil {
				return err
			}
			var comments []model.Comment
			if len(criteria) == 0 {
				comments, err = a.clients.Comments.FetchAll(cmd.Context())
			} else {
				comments, err = a.clients.Comments.Filter(cmd.Context(), criteria)
			}
			if err != nil {
				return err
			}
			return a.emit(cmd, comments, func(w io.Writer) { a.commentsTable(w, comments) })
		},
	}
	list.Flags().StringArrayVarP(&filters, "where", "w", nil, "filter criterion key=value (repeatable)")

	get := &cobra.Command{
		Use:   "get ID",
		Short: "Show one comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := a.clients.Comments.FetchOne(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.emit(cmd, c, func(w io.Writer) { printComment(w, c) })
		},
	}

	var base model.CommentBase
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a comment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.clients.Comments.Create(cmd.Context(), base)
			if err != nil {
				return err
			}
			return a.emit(cmd, c, func(w io.Writer) { printComment(w, c) })
		},
	}
	commentFlags(create, &base)

	var full model.CommentBase
	update := &cobra.Command{
		Use:   "update ID",
		Short: "Replace a comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := a.clients.Comments.Update(cmd.Context(), model.Comment{ID: id, CommentBase: full})
			if err != nil {
				return err
			}
			return a.emit(cmd, c, func(w io.Writer) { printComment(w, c) })
		},
	}
	commentFlags(update, &full)

	var partial model.CommentBase
	patch := &cobra.Command{
		Use:   "patch ID",
		Short: "Change selected fields of a comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p := model.CommentPatch{ID: id}
			flags := cmd.Flags()
			if flags.Changed("post-id") {
				p.PostID = model.Ptr(partial.PostID)
			}
			if flags.Changed("name") {
				p.Name = model.Ptr(partial.Name)
			}
			if flags.Changed("email") {
				p.Email = model.Ptr(partial.Email)
			}
			if flags.Changed("body") {
				p.Body = model.Ptr(partial.Body)
			}
			c, err := a.clients.Comments.Patch(cmd.Context(), p)
			if err != nil {
				return err
			}
			return a.emit(cmd, c, func(w io.Writer) { printComment(w, c) })
		},
	}
	commentFlags(patch, &partial)

	del := &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete a comment",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.clients.Comments.Delete(cmd.Context(), id); err != nil {
				return err
			}
			deleted(cmd.OutOrStdout(), "comment", id)
			return nil
		},
	}

	cmd.AddCommand(list, get, create, update, patch, del)
	return cmd
}

func commentFlags(cmd *cobra.Command, c *model.CommentBase) {
	cmd.Flags().IntVar(&c.PostID, "post-id", 0, "post the comment belongs to")
	cmd.Flags().StringVar(&c.Name, "name", "", "comment title")
	cmd.Flags().StringVar(&c.Email, "email", "", "commenter email")
	cmd.Flags().StringVar(&c.Body, "body", "", "comment body")
}
