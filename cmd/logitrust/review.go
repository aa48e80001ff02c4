package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/logitrust/internal/application/handlers"
	"github.com/ersonp/logitrust/internal/domain/entities"
)

func newReviewCmd() *cobra.Command {
	var in handlers.ReviewRequest

	cmd := &cobra.Command{
		Use:   "review <place-id>",
		Short: "Rate a place and leave a tip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.PlaceID = args[0]
			ctx := cmd.Context()
			return withSession(ctx, func(d *Deps, user *entities.User) error {
				review, err := d.Places.Review(ctx, user, in)
				if err != nil {
					return err
				}
				if globalJSON {
					return writeJSON(cmd.OutOrStdout(), review)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Review %s added (%d/5).\n", review.ID, review.Rating)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&in.Rating, "rating", "r", 0, "Rating from 1 to 5 (required)")
	cmd.Flags().StringVarP(&in.TipText, "tip", "t", "", "Tip for other drivers")
	cmd.Flags().StringSliceVar(&in.Tags, "tag", nil, "Tags (repeatable)")
	_ = cmd.MarkFlagRequired("rating")

	return cmd
}

func newAnnounceCmd() *cobra.Command {
	var in handlers.AnnouncementRequest

	cmd := &cobra.Command{
		Use:   "announce <place-id>",
		Short: "Post an announcement on a place (dispatch and ops)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.PlaceID = args[0]
			ctx := cmd.Context()
			return withSession(ctx, func(d *Deps, user *entities.User) error {
				ann, err := d.Places.Announce(ctx, user, in)
				if err != nil {
					return err
				}
				if globalJSON {
					return writeJSON(cmd.OutOrStdout(), ann)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Announcement %s posted.\n", ann.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&in.Title, "title", "", "Title (required)")
	cmd.Flags().StringVar(&in.Content, "content", "", "Body text")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newNotificationsCmd() *cobra.Command {
	var markRead string

	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Show decisions on your edit requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withSession(ctx, func(d *Deps, user *entities.User) error {
				if markRead != "" {
					if err := d.Notifications.MarkRead(ctx, user, markRead); err != nil {
						return err
					}
				}
				list, err := d.Notifications.List(user)
				if err != nil {
					return err
				}
				if globalJSON {
					return writeJSON(cmd.OutOrStdout(), list)
				}
				formatNotifications(cmd.OutOrStdout(), list)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&markRead, "read", "", "Mark the notification with this ID as read")

	return cmd
}
