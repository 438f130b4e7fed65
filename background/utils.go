package background

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/communityaid/communityaid-api/utils"
)

// LocalizedNotification renders the heading and content of a
// notification message id for a language, with template data applied
// to the content.
func LocalizedNotification(lang, messageID string, data map[string]interface{}) (string, string, error) {
	loc := utils.NewLocalizer(lang)

	heading, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID: messageID + ".title",
	})
	if err != nil {
		return "", "", err
	}

	content, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID + ".body",
		TemplateData: data,
	})
	if err != nil {
		return "", "", err
	}

	return heading, content, nil
}
