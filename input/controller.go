package input

import (
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/touchplay/engine"
	"github.com/lixenwraith/touchplay/play"
)

// DefaultDesignName names a saved design whose draft has no name
const DefaultDesignName = "custom play"

// Projector converts screen cells to pitch coordinates
type Projector interface {
	CellToWorld(col, row int) (x, z float64, ok bool)
}

// Notifier receives short user-facing messages
type Notifier interface {
	SetMessage(format string, args ...any)
}

// SoundToggle switches the audio cues
type SoundToggle interface {
	SetEnabled(on bool)
	Enabled() bool
}

// Controller applies intents to a session
type Controller struct {
	session  *engine.Session
	machine  *Machine
	project  func() Projector
	status   Notifier
	sound    SoundToggle
	savePath string
	log      zerolog.Logger
}

// ControllerConfig wires a controller. Sound may be nil; SavePath empty disables writing designs to disk
type ControllerConfig struct {
	Session  *engine.Session
	Machine  *Machine
	Project  func() Projector
	Status   Notifier
	Sound    SoundToggle
	SavePath string
	Logger   zerolog.Logger
}

// NewController creates a controller
func NewController(cfg ControllerConfig) *Controller {
	m := cfg.Machine
	if m == nil {
		m = NewMachine(nil)
	}
	return &Controller{
		session:  cfg.Session,
		machine:  m,
		project:  cfg.Project,
		status:   cfg.Status,
		sound:    cfg.Sound,
		savePath: cfg.SavePath,
		log:      cfg.Logger,
	}
}

// Handle parses and applies one terminal event
// Returns the parsed intent, or nil when the event means nothing in the current state
func (c *Controller) Handle(ev tcell.Event) *Intent {
	c.machine.SetMode(ModeFor(c.session.State()))
	in := c.machine.Process(ev)
	if in != nil {
		c.Apply(in)
	}
	return in
}

// Apply executes an intent against the session. Failures are reported on the status bar
func (c *Controller) Apply(in *Intent) {
	var err error

	switch in.Type {
	case IntentStartPractice:
		err = c.session.StartPractice()
	case IntentOpenDesigner:
		err = c.session.OpenDesigner()
	case IntentReset:
		c.session.ResetGame()
		c.notify("game reset")
	case IntentEscape:
		if c.session.State() == engine.StatePlayDesigner {
			err = c.session.ExitDesigner()
		}
	case IntentToggleSound:
		c.toggleSound()
	case IntentChoose:
		_, err = c.session.ChooseIndex(in.Index)
	case IntentPitchClick:
		err = c.click(in)
	case IntentMarkCorrect:
		err = c.markCorrect(in.Index)
	case IntentPreview:
		err = c.session.Preview()
	case IntentClearPath:
		err = c.withDesigner(func(d *play.Designer) error { return d.ClearPath() })
	case IntentSetCarrier:
		err = c.setCarrier()
	case IntentAddTransfer:
		err = c.addTransfer()
	case IntentSavePlay:
		err = c.save()
	}

	if err != nil {
		c.log.Warn().Err(err).Stringer("intent", in.Type).Msg("intent rejected")
		c.notify("%v", err)
	}
}

func (c *Controller) notify(format string, args ...any) {
	if c.status != nil {
		c.status.SetMessage(format, args...)
	}
}

func (c *Controller) toggleSound() {
	if c.sound == nil {
		c.notify("sound unavailable")
		return
	}
	c.sound.SetEnabled(!c.sound.Enabled())
	if c.sound.Enabled() {
		c.notify("sound on")
	} else {
		c.notify("sound off")
	}
}

func (c *Controller) withDesigner(fn func(d *play.Designer) error) error {
	d := c.session.Designer()
	if d == nil {
		return fmt.Errorf("%w: designer is not open", engine.ErrWrongState)
	}
	return fn(d)
}

// click selects the player under the cursor, otherwise extends the selected path
func (c *Controller) click(in *Intent) error {
	if c.project == nil {
		return nil
	}
	x, z, ok := c.project().CellToWorld(in.Col, in.Row)
	if !ok {
		return nil
	}
	if id, ok := c.session.SelectAt(x, z); ok {
		c.notify("selected %s", id)
		return nil
	}
	return c.withDesigner(func(d *play.Designer) error {
		idx, err := d.AddWaypoint(x, z, in.Decision)
		if err != nil {
			return err
		}
		kind := "waypoint"
		if in.Decision {
			kind = "decision point"
		}
		c.notify("%s %d at (%.1f, %.1f)", kind, idx+1, x, z)
		return nil
	})
}

func (c *Controller) markCorrect(opt int) error {
	return c.withDesigner(func(d *play.Designer) error {
		wp, ok := d.LastDecision()
		if !ok {
			return fmt.Errorf("%w: selected path has no decision point", play.ErrBadWaypoint)
		}
		return d.MarkCorrect(wp, opt)
	})
}

func (c *Controller) setCarrier() error {
	return c.withDesigner(func(d *play.Designer) error {
		id, ok := d.Selected()
		if !ok {
			return play.ErrNoSelection
		}
		if err := d.SetCarrier(id); err != nil {
			return err
		}
		c.notify("%s carries the ball", id)
		return nil
	})
}

// addTransfer scripts a pass from the carrier to the selected player once the carrier ends its path
func (c *Controller) addTransfer() error {
	return c.withDesigner(func(d *play.Designer) error {
		to, ok := d.Selected()
		if !ok {
			return play.ErrNoSelection
		}
		from := d.Draft().CarrierID()
		if err := d.AddTransfer(from, to, len(d.Path(from))-1); err != nil {
			return err
		}
		c.notify("pass %s -> %s", from, to)
		return nil
	})
}

func (c *Controller) save() error {
	var name string
	if err := c.withDesigner(func(d *play.Designer) error {
		name = d.Draft().Name
		return nil
	}); err != nil {
		return err
	}
	if name == "" {
		name = DefaultDesignName
	}

	p, err := c.session.SaveDesign(name)
	if err != nil {
		return err
	}
	if c.savePath == "" {
		c.notify("saved %q", p.Name)
		return nil
	}
	if err := writePlay(c.savePath, p); err != nil {
		return err
	}
	c.notify("saved %q to %s", p.Name, c.savePath)
	return nil
}

func writePlay(path string, p *play.Play) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save play: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return play.Encode(f, p)
}
