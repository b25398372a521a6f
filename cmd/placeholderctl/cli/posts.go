package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/postboard/placeholder_sdk_go/pkg/filter"
	"github.com/postboard/placeholder_sdk_go/pkg/model"
)

func (a *app) postsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "posts",
		Aliases: []string{"post", "p"},
		Short:   "Work with posts",
	}

	var filters []string
	list := &cobra.Command{
		Use:   "list",
		Short: "List posts, optionally filtered with --where key=value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := filter.ParseAll(filters)
			if err != nil {
				return err
			}
			var posts []model.Post
			if len(criteria) == 0 {
				posts, err = a.clients.Posts.FetchAll(cmd.Context())
			} else {
				posts, err = a.clients.Posts.Filter(cmd.Context(), criteria)
			}
			if err != nil {
				return err
			}
			return a.emit(cmd, posts, func(w io.Writer) { a.postsTable(w, posts) })
		},
	}
	list.Flags().StringArrayVarP(&filters, "where", "w", nil, "filter criterion key=value (repeatable)")

	get := &cobra.Command{
		Use:   "get ID",
		Short: "Show one post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			post, err := a.clients.Posts.FetchOne(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.emit(cmd, post, func(w io.Writer) { printPost(w, post) })
		},
	}

	var base model.PostBase
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			post, err := a.clients.Posts.Create(cmd.Context(), base)
			if err != nil {
				return err
			}
			return a.emit(cmd, post, func(w io.Writer) { printPost(w, post) })
		},
	}
	postFlags(create, &base)

	var full model.PostBase
	update := &cobra.Command{
		Use:   "update ID",
		Short: "Replace a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			post, err := a.clients.Posts.Update(cmd.Context(), model.Post{ID: id, PostBase: full})
			if err != nil {
				return err
			}
			return a.emit(cmd, post, func(w io.Writer) { printPost(w, post) })
		},
	}
	postFlags(update, &full)

	var partial model.PostBase
	patch := &cobra.Command{
		Use:   "patch ID",
		Short: "Change selected fields of a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p := model.PostPatch{ID: id}
			flags := cmd.Flags()
			if flags.Changed("title") {
				p.Title = model.Ptr(partial.Title)
			}
			if flags.Changed("body") {
				p.Body = model.Ptr(partial.Body)
			}
			if flags.Changed("user-id") {
				p.UserID = model.Ptr(partial.UserID)
			}
			post, err := a.clients.Posts.Patch(cmd.Context(), p)
			if err != nil {
				return err
			}
			return a.emit(cmd, post, func(w io.Writer) { printPost(w, post) })
		},
	}
	postFlags(patch, &partial)

	del := &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete a post",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.clients.Posts.Delete(cmd.Context(), id); err != nil {
				return err
			}
			deleted(cmd.OutOrStdout(), "post", id)
			return nil
		},
	}

	comments := &cobra.Command{
		Use:   "comments ID",
		Short: "List the comments on a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			list, err := a.clients.Posts.FetchComments(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.emit(cmd, list, func(w io.Writer) { a.commentsTable(w, list) })
		},
	}

	computed := &cobra.Command{
		Use:   "computed",
		Short: "List posts together with their authors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.clients.Posts.FetchComputed(cmd.Context())
			if err != nil {
				return err
			}
			return a.emit(cmd, list, func(w io.Writer) { a.computedTable(w, list) })
		},
	}

	cmd.AddCommand(list, get, create, update, patch, del, comments, computed)
	return cmd
}

func postFlags(cmd *cobra.Command, p *model.PostBase) {
	cmd.Flags().StringVar(&p.Title, "title", "", "post title")
	cmd.Flags().StringVar(&p.Body, "body", "", "post body")
	cmd.Flags().IntVar(&p.UserID, "user-id", 0, "author id")
}
