package main

import (
	"errors"
	"flag"
	"io"

	domainauth "github.com/tijaniyah/companion/internal/domain/auth"
	apperrors "github.com/tijaniyah/companion/internal/errors"
)

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func runLogin(ctx *commandContext, args []string) error {
	fs := newFlagSet("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return errors.New("-email is required")
	}

	if err := ctx.App.Session.Login(ctx.Ctx, domainauth.Credentials{Email: *email, Password: *password}); err != nil {
		return err
	}
	return printState(ctx.Out, ctx.App.Session.State())
}

func runRegister(ctx *commandContext, args []string) error {
	fs := newFlagSet("register")
	var reg domainauth.Registration
	fs.StringVar(&reg.Email, "email", "", "account email")
	fs.StringVar(&reg.Password, "password", "", "password (at least 6 characters)")
	fs.StringVar(&reg.ConfirmPassword, "confirm", "", "password confirmation")
	fs.StringVar(&reg.Name, "name", "", "display name")
	fs.StringVar(&reg.Phone, "phone", "", "phone number")
	fs.StringVar(&reg.Location, "location", "", "city or region")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := ctx.App.Session.Register(ctx.Ctx, reg); err != nil {
		return err
	}
	return printState(ctx.Out, ctx.App.Session.State())
}

func runLogout(ctx *commandContext, _ []string) error {
	ctx.App.Session.Logout(ctx.Ctx)
	return printState(ctx.Out, ctx.App.Session.State())
}

func runGuest(ctx *commandContext, _ []string) error {
	return printState(ctx.Out, ctx.App.Session.ContinueAsGuest())
}

func runWhoami(ctx *commandContext, _ []string) error {
	return printState(ctx.Out, ctx.App.Session.State())
}

func runResetPassword(ctx *commandContext, args []string) error {
	fs := newFlagSet("reset-password")
	email := fs.String("email", "", "account email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := ctx.App.Session.ResetPassword(ctx.Ctx, *email); err != nil {
		return err
	}
	return writef(ctx.Out, "If an account exists for %s, reset instructions are on their way.\n", *email)
}

func runUpdateProfile(ctx *commandContext, args []string) error {
	fs := newFlagSet("update-profile")
	name := fs.String("name", "", "display name")
	phone := fs.String("phone", "", "phone number")
	picture := fs.String("picture", "", "picture URL")
	location := fs.String("location", "", "city or region")
	method := fs.String("prayer-method", "", "prayer time calculation method")
	language := fs.String("language", "", "preferred language code")
	notifications := fs.Bool("notifications", true, "enable notifications")
	if err := fs.Parse(args); err != nil {
		return err
	}

	st := ctx.App.Session.State()
	if !st.IsAuthenticated() {
		return apperrors.Unauthorized("sign in to update your profile")
	}

	var upd domainauth.ProfileUpdate
	prefs := st.User.Preferences
	prefsChanged := false
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			upd.Name = name
		case "phone":
			upd.Phone = phone
		case "picture":
			upd.Picture = picture
		case "location":
			upd.Location = location
		case "prayer-method":
			prefs.PrayerMethod, prefsChanged = *method, true
		case "language":
			prefs.Language, prefsChanged = *language, true
		case "notifications":
			prefs.Notifications, prefsChanged = *notifications, true
		}
	})
	if prefsChanged {
		upd.Preferences = &prefs
	}

	return printState(ctx.Out, ctx.App.Session.UpdateProfile(ctx.Ctx, upd))
}

func printState(w io.Writer, st domainauth.State) error {
	switch {
	case st.IsAuthenticated():
		u := st.User
		if err := writef(w, "Signed in as %s <%s>\n", u.Name, u.Email); err != nil {
			return err
		}
		if err := writef(w, "  id:       %s\n  role:     %s\n", u.ID, u.EffectiveRole()); err != nil {
			return err
		}
		if u.Location != "" {
			if err := writef(w, "  location: %s\n", u.Location); err != nil {
				return err
			}
		}
		return writef(w, "  prayer:   %s  language: %s  notifications: %t\n",
			u.Preferences.PrayerMethod, u.Preferences.Language, u.Preferences.Notifications)
	case st.IsGuest():
		return writef(w, "Browsing as guest\n")
	case st.IsLoading():
		return writef(w, "Loading\n")
	default:
		if st.Error != "" {
			return writef(w, "Signed out (%s)\n", st.Error)
		}
		return writef(w, "Signed out\n")
	}
}

func displayError(err error) string {
	return apperrors.Message(err)
}
