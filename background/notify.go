package background

import (
	"context"

	"github.com/spf13/viper"

	"github.com/communityaid/communityaid-api/external/onesignal"
)

// NotifyUserByText will send message to a user by raw headings, contents and data
func (b *Background) NotifyUserByText(userID string, headings, contents map[string]string, data map[string]interface{}) error {
	filters := []map[string]string{
		{
			"field":    "tag",
			"key":      "user_id",
			"relation": "=",
			"value":    userID,
		},
	}

	req := &onesignal.NotificationRequest{
		AppID:          viper.GetString("onesignal.appid"),
		Headings:       headings,
		Contents:       contents,
		Filters:        filters,
		Data:           data,
		LocalChannelID: "important_alert",
	}
	return b.Onesignal.SendNotification(context.Background(), req)
}
