// Package project serializes slideshow plans into OpenShot-style project
// documents: file entries for the audio track and each distinct photo, timed
// clips with alpha keyframes for the crossfades, and optional title cards and
// export settings.
package project
