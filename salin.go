// Package salin provides on-demand translation of the PWD registry's UI
// copy into Philippine languages and dialects.
//
// Salin decides what to translate, when to call the external provider, and
// how long to cache results. English is the canonical source language: every
// translation key doubles as its own English text, so the default locale
// never touches the provider, and any provider failure silently degrades to
// the untranslated English input.
//
// Basic usage:
//
//	p, err := provider.NewGoogleProvider(provider.GoogleConfig{
//	    APIKey: os.Getenv("SALIN_GOOGLE_API_KEY"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	svc := salin.NewService(p,
//	    salin.WithCache(cache.NewInMemoryCache(cache.DefaultTTLSeconds)),
//	)
//
//	greeting := svc.Get(ctx, "Welcome, :name", map[string]string{"name": "Ana"}, "tl")
package salin
