package peripheral

import (
	"context"
)

// Drive is a disk drive.
type Drive struct {
	Base
}

// NewDrive creates a drive proxy bound to the given handle.
func NewDrive(sess Session, handle Handle) *Drive {
	return &Drive{Base: NewBase(sess, handle)}
}

// IsDiskPresent reports whether a disk is inserted.
func (d *Drive) IsDiskPresent(ctx context.Context) (bool, error) {
	res, err := d.Call(ctx, "isDiskPresent")
	if err != nil {
		return false, err
	}
	return res.Bool()
}

// DiskLabel returns the inserted disk's label, or nil without a labelled disk.
func (d *Drive) DiskLabel(ctx context.Context) (*string, error) {
	res, err := d.Call(ctx, "getDiskLabel")
	if err != nil {
		return nil, err
	}
	return res.OptionString()
}

// SetDiskLabel sets the disk label; nil clears it.
func (d *Drive) SetDiskLabel(ctx context.Context, label *string) error {
	var arg any
	if label != nil {
		arg = *label
	}
	res, err := d.Call(ctx, "setDiskLabel", arg)
	if err != nil {
		return err
	}
	return res.None()
}

// HasData reports whether the disk holds mountable data.
func (d *Drive) HasData(ctx context.Context) (bool, error) {
	res, err := d.Call(ctx, "hasData")
	if err != nil {
		return false, err
	}
	return res.Bool()
}

// MountPath returns the path the disk is mounted at, or nil.
func (d *Drive) MountPath(ctx context.Context) (*string, error) {
	res, err := d.Call(ctx, "getMountPath")
	if err != nil {
		return nil, err
	}
	return res.OptionString()
}

// HasAudio reports whether the disk is a playable record.
func (d *Drive) HasAudio(ctx context.Context) (bool, error) {
	res, err := d.Call(ctx, "hasAudio")
	if err != nil {
		return false, err
	}
	return res.Bool()
}

// AudioTitle returns the record's title. The host reports "no audio" as
// either nil or false; both map to a nil title.
func (d *Drive) AudioTitle(ctx context.Context) (title *string, err error) {
	res, err := d.Call(ctx, "getAudioTitle")
	if err != nil {
		return nil, err
	}
	s, _, err := res.OptionStringOrBool()
	return s, err
}

// PlayAudio starts playing the inserted record.
func (d *Drive) PlayAudio(ctx context.Context) error {
	res, err := d.Call(ctx, "playAudio")
	if err != nil {
		return err
	}
	return res.None()
}

// StopAudio stops playback.
func (d *Drive) StopAudio(ctx context.Context) error {
	res, err := d.Call(ctx, "stopAudio")
	if err != nil {
		return err
	}
	return res.None()
}

// EjectDisk ejects the inserted disk.
func (d *Drive) EjectDisk(ctx context.Context) error {
	res, err := d.Call(ctx, "ejectDisk")
	if err != nil {
		return err
	}
	return res.None()
}

// DiskID returns the disk's unique id, or nil for non-data disks.
func (d *Drive) DiskID(ctx context.Context) (*int64, error) {
	res, err := d.Call(ctx, "getDiskID")
	if err != nil {
		return nil, err
	}
	return res.OptionInt()
}
