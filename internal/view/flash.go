package view

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName = "resumio-flash"
	flashKeySuccess  = "success"
	flashKeyError    = "error"
)

// FlashData holds the one-shot messages carried across a redirect.
type FlashData struct {
	Success []string
	Error   []string
}

// Empty reports whether there is nothing to show.
func (f FlashData) Empty() bool {
	return len(f.Success) == 0 && len(f.Error) == 0
}

func setFlash(c echo.Context, key, message string) {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		c.Logger().Warn("flash session unavailable: ", err)
		return
	}
	sess.AddFlash(message, key)
	_ = sess.Save(c.Request(), c.Response())
}

// SetFlashSuccess sets a success flash message.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, flashKeySuccess, message)
}

// SetFlashError sets an error flash message.
func SetFlashError(c echo.Context, message string) {
	setFlash(c, flashKeyError, message)
}

// GetFlashData retrieves and clears the flash messages.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return data
	}

	success := sess.Flashes(flashKeySuccess)
	failure := sess.Flashes(flashKeyError)
	if len(success) == 0 && len(failure) == 0 {
		return data
	}
	data.Success = toStrings(success)
	data.Error = toStrings(failure)
	_ = sess.Save(c.Request(), c.Response())
	return data
}

func toStrings(values []any) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
