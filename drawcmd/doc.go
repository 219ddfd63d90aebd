// Package drawcmd reads and draws vector icons stored as draw commands.
//
// A draw-command blob is a little-endian packed hierarchy: an Image holds
// one List of Commands, a Sequence holds Frames that each carry a duration
// and a List. Every type here is a view over the borrowed blob. Parsing
// validates the layout once through a bounds-checked cursor; accessors then
// read fields in place and setters write them back into the blob.
//
// Commands are paths or circles, in whole-pixel or precise (1/8 pixel)
// coordinates:
//
//	img, err := drawcmd.ParseImage(blob)
//	if err != nil {
//	    return err
//	}
//	drawcmd.DrawImage(ctx, img, ngfx.Pt(10, 10))
//
// Resource files wrap a blob in an 8-byte header, "PDCI" or "PDCS" plus a
// 32-bit payload size; use ParseImageFile and ParseSequenceFile for those.
package drawcmd
