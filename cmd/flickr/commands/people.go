package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/flickr/internal/constants"
	"github.com/fivetwenty-io/flickr/pkg/flickr"
)

// NewPeopleCommand creates the people command group.
func NewPeopleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "people",
		Aliases: []string{"person", "users"},
		Short:   "Query Flickr accounts",
		Long:    "Look up Flickr accounts and list their groups, photos and upload allowance",
	}

	cmd.AddCommand(newPeopleFindByEmailCommand())
	cmd.AddCommand(newPeopleFindByUsernameCommand())
	cmd.AddCommand(newPeopleInfoCommand())
	cmd.AddCommand(newPeopleGroupsCommand())
	cmd.AddCommand(newPeoplePublicPhotosCommand())
	cmd.AddCommand(newPeoplePhotosCommand())
	cmd.AddCommand(newPeopleUploadStatusCommand())

	return cmd
}

func newPeopleFindByEmailCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find-by-email EMAIL",
		Short: "Find a user by email address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := clientFactory(ctx)
			if err != nil {
				return err
			}

			user, err := client.People().FindByEmail(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to find user: %w", err)
			}

			return render(cmd.OutOrStdout(), user, func(out io.Writer) error {
				return renderFoundUser(out, user)
			})
		},
	}
}

func newPeopleFindByUsernameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find-by-username USERNAME",
		Short: "Find a user by username",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := clientFactory(ctx)
			if err != nil {
				return err
			}

			user, err := client.People().FindByUsername(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to find user: %w", err)
			}

			return render(cmd.OutOrStdout(), user, func(out io.Writer) error {
				return renderFoundUser(out, user)
			})
		},
	}
}

func newPeopleInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info USER_ID",
		Short: "Show a user's profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := clientFactory(ctx)
			if err != nil {
				return err
			}

			user, err := client.People().GetInfo(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get user info: %w", err)
			}

			return render(cmd.OutOrStdout(), user, func(out io.Writer) error {
				return renderUserInfo(out, user)
			})
		},
	}
}

func newPeopleGroupsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "groups USER_ID",
		Short: "List a user's public groups",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := clientFactory(ctx)
			if err != nil {
				return err
			}

			groups, err := client.People().GetPublicGroups(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to list groups: %w", err)
			}

			return render(cmd.OutOrStdout(), groups, func(out io.Writer) error {
				return renderGroups(out, groups)
			})
		},
	}
}

// photosFetcher fetches one photo list page for the given arguments.
type photosFetcher func(ctx context.Context, params *flickr.PhotosParams) (*flickr.PhotoList, error)

// PhotosListOptions holds the options of the photo list commands.
type PhotosListOptions struct {
	Extras   []string
	PerPage  int
	Page     int
	AllPages bool
}

func addPhotosListFlags(cmd *cobra.Command, opts *PhotosListOptions) {
	cmd.Flags().StringSliceVar(&opts.Extras, "extras", nil, "extra photo fields (default: a minimal set; pass \"\" for none)")
	cmd.Flags().IntVar(&opts.PerPage, "per-page", constants.StandardPageSize, "results per page (max 500)")
	cmd.Flags().IntVar(&opts.Page, "page", 1, "page to fetch")
	cmd.Flags().BoolVar(&opts.AllPages, "all", false, "fetch all pages")
}

// photosParams converts the flags to request arguments. MinExtras is used
// unless --extras was given.
func (o PhotosListOptions) photosParams(cmd *cobra.Command) (*flickr.PhotosParams, error) {
	if o.PerPage < 1 || o.PerPage > constants.MaxPageSize {
		return nil, constants.ErrInvalidPerPage
	}

	params := flickr.DefaultPhotosParams(o.PerPage, o.Page)
	if cmd.Flags().Changed("extras") {
		params = params.WithExtras(o.Extras...)
	}

	return params, nil
}

func newPeoplePublicPhotosCommand() *cobra.Command {
	var opts PhotosListOptions

	cmd := &cobra.Command{
		Use:   "public-photos USER_ID",
		Short: "List a user's public photos",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPhotosList(cmd, opts, func(client flickr.Client) photosFetcher {
				return func(ctx context.Context, params *flickr.PhotosParams) (*flickr.PhotoList, error) {
					return client.People().GetPublicPhotos(ctx, args[0], params)
				}
			})
		},
	}

	addPhotosListFlags(cmd, &opts)

	return cmd
}

func newPeoplePhotosCommand() *cobra.Command {
	var opts PhotosListOptions

	cmd := &cobra.Command{
		Use:   "photos [USER_ID]",
		Short: "List photos visible to the authenticated user",
		Long: `List the photos of USER_ID that the authenticated user may see, including
private ones. USER_ID defaults to "me". Requires OAuth credentials.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !loadConfig().CanSign() {
				return constants.ErrAuthRequired
			}

			userID := "me"
			if len(args) == 1 {
				userID = args[0]
			}

			return runPhotosList(cmd, opts, func(client flickr.Client) photosFetcher {
				return func(ctx context.Context, params *flickr.PhotosParams) (*flickr.PhotoList, error) {
					return client.People().GetPhotos(ctx, userID, params)
				}
			})
		},
	}

	addPhotosListFlags(cmd, &opts)

	return cmd
}

func runPhotosList(cmd *cobra.Command, opts PhotosListOptions, bind func(flickr.Client) photosFetcher) error {
	params, err := opts.photosParams(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	client, err := clientFactory(ctx)
	if err != nil {
		return err
	}

	fetch := bind(client)

	if !opts.AllPages {
		list, err := fetch(ctx, params)
		if err != nil {
			return fmt.Errorf("failed to list photos: %w", err)
		}

		return render(cmd.OutOrStdout(), list, func(out io.Writer) error {
			return renderPhotos(out, list.Items, &list.Pagination)
		})
	}

	photos, err := flickr.CollectAll[flickr.Photo](ctx, func(ctx context.Context, page int) (*flickr.PhotoList, error) {
		return fetch(ctx, params.WithPage(page))
	}, constants.MaxPages)
	if err != nil {
		return fmt.Errorf("failed to list photos: %w", err)
	}

	return render(cmd.OutOrStdout(), photos, func(out io.Writer) error {
		return renderPhotos(out, photos, nil)
	})
}

func newPeopleUploadStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "upload-status",
		Short: "Show the authenticated user's upload allowance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !loadConfig().CanSign() {
				return constants.ErrAuthRequired
			}

			ctx := cmd.Context()

			client, err := clientFactory(ctx)
			if err != nil {
				return err
			}

			user, err := client.People().GetUploadStatus(ctx)
			if err != nil {
				return fmt.Errorf("failed to get upload status: %w", err)
			}

			return render(cmd.OutOrStdout(), user, func(out io.Writer) error {
				return renderUploadStatus(out, user)
			})
		},
	}
}

func renderFoundUser(out io.Writer, user *flickr.User) error {
	table := tablewriter.NewWriter(out)
	table.Header("Property", "Value")
	_ = table.Append("ID", user.ID)
	_ = table.Append("Username", valueOrNA(user.Username))

	return renderTable(table)
}

func renderUserInfo(out io.Writer, user *flickr.User) error {
	table := tablewriter.NewWriter(out)
	table.Header("Property", "Value")
	_ = table.Append("ID", user.ID)
	_ = table.Append("Username", valueOrNA(user.Username))
	_ = table.Append("Real Name", valueOrNA(user.RealName))
	_ = table.Append("Pro", strconv.FormatBool(user.Pro))
	_ = table.Append("Location", valueOrNA(user.Location))
	_ = table.Append("Path Alias", valueOrNA(user.PathAlias))
	_ = table.Append("Photos URL", valueOrNA(user.PhotosURL))
	_ = table.Append("Profile URL", valueOrNA(user.ProfileURL))
	_ = table.Append("Photo Count", valueOrNA(user.PhotosCount))
	_ = table.Append("First Upload", valueOrNA(user.PhotosFirstDate))
	_ = table.Append("First Taken", valueOrNA(user.PhotosFirstDateTaken))

	return renderTable(table)
}

func renderGroups(out io.Writer, groups []flickr.Group) error {
	if len(groups) == 0 {
		_, _ = io.WriteString(out, "No public groups found\n")

		return nil
	}

	table := tablewriter.NewWriter(out)
	table.Header("ID", "Name", "Admin", "18+", "Invitation Only")

	for _, group := range groups {
		_ = table.Append(group.ID, group.Name, checkMark(group.Admin), checkMark(group.EighteenPlus), checkMark(group.InvitationOnly))
	}

	return renderTable(table)
}

func renderPhotos(out io.Writer, photos []flickr.Photo, pagination *flickr.Pagination) error {
	if len(photos) == 0 {
		_, _ = io.WriteString(out, "No photos found\n")

		return nil
	}

	table := tablewriter.NewWriter(out)
	table.Header("ID", "Title", "Owner", "Public", "Taken", "Media")

	for _, photo := range photos {
		_ = table.Append(photo.ID, photo.Title, photo.Owner, checkMark(photo.IsPublic),
			valueOrNA(photo.DateTaken), valueOrNA(photo.Media))
	}

	err := renderTable(table)
	if err != nil {
		return err
	}

	if pagination != nil && pagination.Page < pagination.Pages {
		_, _ = fmt.Fprintf(out, "\nShowing page %d of %d (%d photos). Use --all to fetch all pages.\n",
			pagination.Page, pagination.Pages, pagination.Total)
	}

	return nil
}

func renderUploadStatus(out io.Writer, user *flickr.User) error {
	table := tablewriter.NewWriter(out)
	table.Header("Property", "Value")
	_ = table.Append("ID", user.ID)
	_ = table.Append("Username", valueOrNA(user.Username))
	_ = table.Append("Pro", strconv.FormatBool(user.Pro))
	_ = table.Append("Max File Size", valueOrNA(user.FilesizeMax))

	if bandwidth := user.Bandwidth; bandwidth != nil {
		if bandwidth.Unlimited {
			_ = table.Append("Bandwidth", "unlimited")
		} else {
			_ = table.Append("Bandwidth Used (KB)", strconv.FormatInt(bandwidth.UsedKB, 10))
			_ = table.Append("Bandwidth Max (KB)", strconv.FormatInt(bandwidth.MaxKB, 10))
			_ = table.Append("Bandwidth Remaining (KB)", strconv.FormatInt(bandwidth.RemainingKB, 10))
		}
	}

	return renderTable(table)
}

func renderTable(table *tablewriter.Table) error {
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
