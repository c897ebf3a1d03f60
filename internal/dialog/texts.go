package dialog

import (
	"sort"
	"strings"
	"time"
)

const UpdatedNotificationTimer = 2 * time.Second

type Texts struct {
	DeleteTitle   string
	DeleteText    string
	DeleteConfirm string
	DeleteCancel  string
	AnswerHint    string

	UpdatedTitle string
	UpdatedText  string

	DeletedTitle string
	DeletedText  string
}

var catalogue = map[string]Texts{
	"en": {
		DeleteTitle:   "Are you sure?",
		DeleteText:    "You won't be able to revert this!",
		DeleteConfirm: "Yes, delete it!",
		DeleteCancel:  "Cancel",
		AnswerHint:    "[y/N]",
		UpdatedTitle:  "Updated",
		UpdatedText:   "The post has been updated successfully",
		DeletedTitle:  "Deleted!",
		DeletedText:   "The post has been deleted.",
	},
	"es": {
		DeleteTitle:   "¿Estás seguro?",
		DeleteText:    "¡No podrás revertir esto!",
		DeleteConfirm: "Sí, eliminarlo!",
		DeleteCancel:  "Cancelar",
		AnswerHint:    "[s/N]",
		UpdatedTitle:  "Actualizado",
		UpdatedText:   "El post ha sido actualizado correctamente",
		DeletedTitle:  "¡Eliminado!",
		DeletedText:   "El post ha sido eliminado.",
	},
}

const DefaultLang = "en"

// TextsFor returns the texts for lang ("es", "es-AR", "en_US", ...),
// falling back to english.
func TextsFor(lang string) Texts {
	if t, ok := catalogue[baseLang(lang)]; ok {
		return t
	}
	return catalogue[DefaultLang]
}

// SupportedLangs lists the languages with their own texts, sorted.
func SupportedLangs() []string {
	langs := make([]string, 0, len(catalogue))
	for lang := range catalogue {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// IsSupportedLang reports whether lang, region suffix ignored, has its own
// texts rather than the english fallback.
func IsSupportedLang(lang string) bool {
	_, ok := catalogue[baseLang(lang)]
	return ok
}

func baseLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	return lang
}

func (t Texts) DeleteConfirmation() Confirmation {
	return Confirmation{
		Title:        t.DeleteTitle,
		Text:         t.DeleteText,
		Icon:         IconWarning,
		ConfirmText:  t.DeleteConfirm,
		CancelText:   t.DeleteCancel,
		ConfirmColor: ConfirmColor,
		CancelColor:  CancelColor,
	}
}

func (t Texts) UpdatedNotification() Notification {
	return Notification{
		Icon:             IconSuccess,
		Title:            t.UpdatedTitle,
		Text:             t.UpdatedText,
		Timer:            UpdatedNotificationTimer,
		TimerProgressBar: true,
	}
}

func (t Texts) DeletedNotification() Notification {
	return Notification{
		Icon:  IconSuccess,
		Title: t.DeletedTitle,
		Text:  t.DeletedText,
	}
}
