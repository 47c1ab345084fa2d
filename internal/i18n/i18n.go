// Package i18n renders user-facing messages in the supported languages.
package i18n

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/fa"
	"github.com/go-playground/locales/ru"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"

	"github.com/user/vexo-checker/internal/logger"
)

// Fallback is used for unknown languages and missing keys.
const Fallback = "en"

// Languages lists the supported language codes in menu order.
var Languages = []string{"en", "ru", "fa", "zh"}

// Names are the native language names shown in the language menu.
var Names = map[string]string{
	"en": "English",
	"ru": "Русский",
	"fa": "فارسی",
	"zh": "中文",
}

var (
	once sync.Once
	uni  *ut.UniversalTranslator
)

func load() {
	fallback := en.New()
	uni = ut.New(fallback, fallback, ru.New(), fa.New(), zh.New())

	register := func(lang string, table map[string]string) {
		trans, _ := uni.GetTranslator(lang)
		for key, text := range table {
			if err := trans.Add(key, text, true); err != nil {
				logger.Error("i18n: %s/%s: %v", lang, key, err)
			}
		}
	}
	register("en", english)
	register("ru", russian)
}

// Supported reports whether lang is one of Languages.
func Supported(lang string) bool {
	_, ok := Names[lang]
	return ok
}

// T renders key in lang, substituting {0}, {1}, ... with params. Missing
// translations fall back to English, and unknown keys render as the key.
func T(lang, key string, params ...any) string {
	once.Do(load)

	args := make([]string, len(params))
	for i, p := range params {
		args[i] = fmt.Sprint(p)
	}

	if s, ok := translate(lang, key, args); ok {
		return s
	}
	if s, ok := translate(Fallback, key, args); ok {
		return s
	}
	return key
}

func translate(lang, key string, args []string) (string, bool) {
	trans, found := uni.FindTranslator(lang)
	if !found {
		return "", false
	}
	s, err := trans.T(key, args...)
	if err != nil {
		if !errors.Is(err, ut.ErrUnknowTranslation) {
			logger.Debug("i18n: %s/%s: %v", lang, key, err)
		}
		return "", false
	}
	return s, true
}

// Translator returns the underlying locale translator, used for number
// formatting.
func Translator(lang string) locales.Translator {
	once.Do(load)
	trans, _ := uni.FindTranslator(lang, Fallback)
	return trans
}
