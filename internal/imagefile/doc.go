// Package imagefile loads images from disk for metadata generation.
//
// Load reads the raw bytes, sniffs the MIME type, and decodes the pixels when
// possible. Decoding failures are tolerated: the raw bytes are enough to send
// to the metadata service, they only disable perceptual duplicate detection
// for that file. Existing EXIF/IPTC attribution fields are captured so
// exports keep the photographer's copyright intact.
package imagefile
