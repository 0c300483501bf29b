package common

import (
	"context"

	"github.com/charmbracelet/log"
	zone "github.com/lrstanley/bubblezone"

	"github.com/teamdesk/teamdesk/pkg/api"
	"github.com/teamdesk/teamdesk/pkg/config"
	"github.com/teamdesk/teamdesk/pkg/query"
	"github.com/teamdesk/teamdesk/pkg/session"
	"github.com/teamdesk/teamdesk/pkg/ui/keymap"
	"github.com/teamdesk/teamdesk/pkg/ui/styles"
)

// Common is a struct all components should embed.
type Common struct {
	ctx           context.Context
	Width, Height int
	Styles        *styles.Styles
	KeyMap        *keymap.KeyMap
	Zone          *zone.Manager
	Logger        *log.Logger

	Client  *api.Client
	Session *session.Store
	Cache   *query.Cache
}

// NewCommon returns a new Common struct.
func NewCommon(ctx context.Context, client *api.Client, sess *session.Store, width, height int) Common {
	if ctx == nil {
		ctx = context.TODO()
	}
	return Common{
		ctx:     ctx,
		Width:   width,
		Height:  height,
		Styles:  styles.DefaultStyles(),
		KeyMap:  keymap.DefaultKeyMap(),
		Zone:    zone.New(),
		Logger:  log.FromContext(ctx).WithPrefix("ui"),
		Client:  client,
		Session: sess,
		Cache:   query.New(query.DefaultSize),
	}
}

// SetSize sets the width and height of the common struct.
func (c *Common) SetSize(width, height int) {
	c.Width = width
	c.Height = height
}

// Context returns the context.
func (c *Common) Context() context.Context {
	return c.ctx
}

// Config returns the client config.
func (c *Common) Config() *config.Config {
	return config.FromContext(c.ctx)
}
