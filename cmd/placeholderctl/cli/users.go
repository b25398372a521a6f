package cli

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/postboard/placeholder_sdk_go/pkg/filter"
	"github.com/postboard/placeholder_sdk_go/pkg/model"
)

func (a *app) usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user", "u"},
		Short:   "Work with users",
	}

	var filters []string
	list := &cobra.Command{
		Use:   "list",
		Short: "List users, optionally filtered with --where key=value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := filter.ParseAll(filters)
			if err != nil {
				return err
			}
			var users []model.User
			if len(criteria) == 0 {
				users, err = a.clients.Users.FetchAll(cmd.Context())
			} else {
				users, err = a.clients.Users.Filter(cmd.Context(), criteria)
			}
			if err != nil {
				return err
			}
			return a.emit(cmd, users, func(w io.Writer) { a.usersTable(w, users) })
		},
	}
	list.Flags().StringArrayVarP(&filters, "where", "w", nil, "filter criterion key=value (repeatable)")

	get := &cobra.Command{
		Use:   "get ID",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			u, err := a.clients.Users.FetchOne(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.emit(cmd, u, func(w io.Writer) { printUser(w, u) })
		},
	}

	var createIn userInput
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a user from flags or a YAML/JSON --file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := createIn.resolve(cmd)
			if err != nil {
				return err
			}
			u, err := a.clients.Users.Create(cmd.Context(), base)
			if err != nil {
				return err
			}
			return a.emit(cmd, u, func(w io.Writer) { printUser(w, u) })
		},
	}
	createIn.flags(create)

	var updateIn userInput
	update := &cobra.Command{
		Use:   "update ID",
		Short: "Replace a user from flags or a YAML/JSON --file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			base, err := updateIn.resolve(cmd)
			if err != nil {
				return err
			}
			u, err := a.clients.Users.Update(cmd.Context(), model.User{ID: id, UserBase: base})
			if err != nil {
				return err
			}
			return a.emit(cmd, u, func(w io.Writer) { printUser(w, u) })
		},
	}
	updateIn.flags(update)

	var patchIn userInput
	patch := &cobra.Command{
		Use:   "patch ID",
		Short: "Change selected top-level fields of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p := model.UserPatch{ID: id}
			flags := cmd.Flags()
			if flags.Changed("name") {
				p.Name = model.Ptr(patchIn.base.Name)
			}
			if flags.Changed("username") {
				p.Username = model.Ptr(patchIn.base.Username)
			}
			if flags.Changed("email") {
				p.Email = model.Ptr(patchIn.base.Email)
			}
			if flags.Changed("phone") {
				p.Phone = model.Ptr(patchIn.base.Phone)
			}
			if flags.Changed("website") {
				p.Website = model.Ptr(patchIn.base.Website)
			}
			u, err := a.clients.Users.Patch(cmd.Context(), p)
			if err != nil {
				return err
			}
			return a.emit(cmd, u, func(w io.Writer) { printUser(w, u) })
		},
	}
	patchIn.scalarFlags(patch)

	del := &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete a user",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.clients.Users.Delete(cmd.Context(), id); err != nil {
				return err
			}
			deleted(cmd.OutOrStdout(), "user", id)
			return nil
		},
	}

	posts := &cobra.Command{
		Use:   "posts ID",
		Short: "List the posts written by a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			list, err := a.clients.Users.FetchPosts(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.emit(cmd, list, func(w io.Writer) { a.postsTable(w, list) })
		},
	}

	cmd.AddCommand(list, get, create, update, patch, del, posts)
	return cmd
}

// userInput collects a user payload from a file, flags, or both. Flags that
// were set explicitly override values read from the file.
type userInput struct {
	file string
	base model.UserBase
}

func (in *userInput) scalarFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&in.base.Name, "name", "", "full name")
	f.StringVar(&in.base.Username, "username", "", "login name")
	f.StringVar(&in.base.Email, "email", "", "email address")
	f.StringVar(&in.base.Phone, "phone", "", "phone number")
	f.StringVar(&in.base.Website, "website", "", "website")
}

func (in *userInput) flags(cmd *cobra.Command) {
	in.scalarFlags(cmd)
	cmd.Flags().StringVarP(&in.file, "file", "f", "", "YAML or JSON file with the full user record")
}

func (in *userInput) resolve(cmd *cobra.Command) (model.UserBase, error) {
	if in.file == "" {
		return in.base, nil
	}
	data, err := os.ReadFile(in.file)
	if err != nil {
		return model.UserBase{}, errors.Wrap(err, "read user file")
	}
	var out model.UserBase
	if err := yaml.UnmarshalStrict(data, &out); err != nil {
		return model.UserBase{}, errors.Wrapf(err, "parse user file %s", in.file)
	}
	flags := cmd.Flags()
	if flags.Changed("name") {
		out.Name = in.base.Name
	}
	if flags.Changed("username") {
		out.Username = in.base.Username
	}
	if flags.Changed("email") {
		out.Email = in.base.Email
	}
	if flags.Changed("phone") {
		out.Phone = in.base.Phone
	}
	if flags.Changed("website") {
		out.Website = in.base.Website
	}
	return out, nil
}
