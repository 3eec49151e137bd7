package usecase

import (
	"context"

	"dbt-guide/internal/chatbot"
	"dbt-guide/internal/i18n"
)

// Match answers one message without a session.
func (uc *implUseCase) Match(ctx context.Context, input chatbot.MatchInput) (chatbot.MatchOutput, error) {
	lang := input.Language
	if lang == "" {
		lang = i18n.PreferenceFromContext(ctx).Initial(uc.opt.DefaultLanguage)
	}
	lang = i18n.OrDefault(lang)

	normalized := chatbot.Normalize(input.Text)
	result := chatbot.Match(normalized, uc.bot.Table(lang))

	return chatbot.MatchOutput{
		Input:      input.Text,
		Normalized: normalized,
		Language:   lang,
		Result:     result,
	}, nil
}

// UpdateResponses merges custom responses into a language table.
func (uc *implUseCase) UpdateResponses(ctx context.Context, lang i18n.Language, responses map[string]string) error {
	if err := uc.bot.UpdateResponses(lang, responses); err != nil {
		uc.l.Warnf(ctx, "chatbot.usecase.UpdateResponses: %v", err)
		return err
	}
	uc.l.Infof(ctx, "chatbot.usecase.UpdateResponses: lang=%s merged=%d", lang, len(responses))
	return nil
}
