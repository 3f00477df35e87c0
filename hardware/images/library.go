// This file is part of Bitsim.
//
// Bitsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Bitsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Bitsim.  If not, see <https://www.gnu.org/licenses/>.

package images

// The built-in library of images. All library images are read-only.
var (
	Heart         = library("09090:99999:99999:09990:00900")
	HeartSmall    = library("00000:09090:09990:00900:00000")
	Happy         = library("00000:09090:00000:90009:09990")
	Smile         = library("00000:00000:00000:90009:09990")
	Sad           = library("00000:09090:00000:09990:90009")
	Confused      = library("00000:09090:00000:09090:90909")
	Angry         = library("90009:09090:00000:99999:90909")
	Asleep        = library("00000:99099:00000:09990:00000")
	Surprised     = library("09090:00000:00900:09090:00900")
	Silly         = library("90009:00000:99999:00909:00999")
	Fabulous      = library("99999:99099:00000:09090:09990")
	Meh           = library("09090:00000:00090:00900:09000")
	Yes           = library("00000:00009:00090:90900:09000")
	No            = library("90009:09090:00900:09090:90009")
	Clock12       = library("00900:00900:00900:00000:00000")
	Clock1        = library("00090:00090:00900:00000:00000")
	Clock2        = library("00000:00099:00900:00000:00000")
	Clock3        = library("00000:00000:00999:00000:00000")
	Clock4        = library("00000:00000:00900:00099:00000")
	Clock5        = library("00000:00000:00900:00090:00090")
	Clock6        = library("00000:00000:00900:00900:00900")
	Clock7        = library("00000:00000:00900:09000:09000")
	Clock8        = library("00000:00000:00900:99000:00000")
	Clock9        = library("00000:00000:99900:00000:00000")
	Clock10       = library("00000:99000:00900:00000:00000")
	Clock11       = library("09000:09000:00900:00000:00000")
	ArrowN        = library("00900:09990:90909:00900:00900")
	ArrowNE       = library("00999:00099:00909:09000:90000")
	ArrowE        = library("00900:00090:99999:00090:00900")
	ArrowSE       = library("90000:09000:00909:00099:00999")
	ArrowS        = library("00900:00900:90909:09990:00900")
	ArrowSW       = library("00009:00090:90900:99000:99900")
	ArrowW        = library("00900:09000:99999:09000:00900")
	ArrowNW       = library("99900:99000:90900:00090:00009")
	Triangle      = library("00000:00900:09090:99999:00000")
	TriangleLeft  = library("90000:99000:90900:90090:99999")
	Chessboard    = library("09090:90909:09090:90909:09090")
	Diamond       = library("00900:09090:90009:09090:00900")
	DiamondSmall  = library("00000:00900:09090:00900:00000")
	Square        = library("99999:90009:90009:90009:99999")
	SquareSmall   = library("00000:09990:09090:09990:00000")
	Rabbit        = library("90900:90900:99990:99090:99990")
	Cow           = library("90009:90009:99999:09990:00900")
	MusicCrotchet = library("00900:00900:00900:99900:99900")
	MusicQuaver   = library("00900:00990:00909:99900:99900")
	MusicQuavers  = library("09999:09009:09009:99099:99099")
	Pitchfork     = library("90909:90909:99999:00900:00900")
	Xmas          = library("00900:09990:00900:09990:99999")
	Pacman        = library("09999:99090:99900:99990:09999")
	Target        = library("00900:09990:99099:09990:00900")
	Tshirt        = library("99099:99999:09990:09990:09990")
	Rollerskate   = library("00099:00099:99999:99999:09090")
	Duck          = library("09900:99900:09999:09990:00000")
	House         = library("00900:09990:99999:09990:09090")
	Tortoise      = library("00000:09990:99999:09090:00000")
	Butterfly     = library("99099:99999:00900:99999:99099")
	Stickfigure   = library("00900:99999:00900:09090:90009")
	Ghost         = library("99999:90909:99999:99999:90909")
	Sword         = library("00900:00900:00900:09990:00900")
	Giraffe       = library("99000:09000:09000:09990:09090")
	Skull         = library("09990:90909:99999:09990:09990")
	Umbrella      = library("09990:99999:00900:90900:09900")
	Snake         = library("99000:99099:09090:09990:00000")
)

// AllClocks is the list of clock images in clockwise order starting at one
// o'clock.
var AllClocks = []*Image{Clock1, Clock2, Clock3, Clock4, Clock5, Clock6, Clock7, Clock8, Clock9, Clock10, Clock11, Clock12}

// AllArrows is the list of arrow images in clockwise order starting at north.
var AllArrows = []*Image{ArrowN, ArrowNE, ArrowE, ArrowSE, ArrowS, ArrowSW, ArrowW, ArrowNW}

// Named maps the upper case name of every library image to the image.
var Named = map[string]*Image{
	"HEART":          Heart,
	"HEART_SMALL":    HeartSmall,
	"HAPPY":          Happy,
	"SMILE":          Smile,
	"SAD":            Sad,
	"CONFUSED":       Confused,
	"ANGRY":          Angry,
	"ASLEEP":         Asleep,
	"SURPRISED":      Surprised,
	"SILLY":          Silly,
	"FABULOUS":       Fabulous,
	"MEH":            Meh,
	"YES":            Yes,
	"NO":             No,
	"CLOCK12":        Clock12,
	"CLOCK1":         Clock1,
	"CLOCK2":         Clock2,
	"CLOCK3":         Clock3,
	"CLOCK4":         Clock4,
	"CLOCK5":         Clock5,
	"CLOCK6":         Clock6,
	"CLOCK7":         Clock7,
	"CLOCK8":         Clock8,
	"CLOCK9":         Clock9,
	"CLOCK10":        Clock10,
	"CLOCK11":        Clock11,
	"ARROW_N":        ArrowN,
	"ARROW_NE":       ArrowNE,
	"ARROW_E":        ArrowE,
	"ARROW_SE":       ArrowSE,
	"ARROW_S":        ArrowS,
	"ARROW_SW":       ArrowSW,
	"ARROW_W":        ArrowW,
	"ARROW_NW":       ArrowNW,
	"TRIANGLE":       Triangle,
	"TRIANGLE_LEFT":  TriangleLeft,
	"CHESSBOARD":     Chessboard,
	"DIAMOND":        Diamond,
	"DIAMOND_SMALL":  DiamondSmall,
	"SQUARE":         Square,
	"SQUARE_SMALL":   SquareSmall,
	"RABBIT":         Rabbit,
	"COW":            Cow,
	"MUSIC_CROTCHET": MusicCrotchet,
	"MUSIC_QUAVER":   MusicQuaver,
	"MUSIC_QUAVERS":  MusicQuavers,
	"PITCHFORK":      Pitchfork,
	"XMAS":           Xmas,
	"PACMAN":         Pacman,
	"TARGET":         Target,
	"TSHIRT":         Tshirt,
	"ROLLERSKATE":    Rollerskate,
	"DUCK":           Duck,
	"HOUSE":          House,
	"TORTOISE":       Tortoise,
	"BUTTERFLY":      Butterfly,
	"STICKFIGURE":    Stickfigure,
	"GHOST":          Ghost,
	"SWORD":          Sword,
	"GIRAFFE":        Giraffe,
	"SKULL":          Skull,
	"UMBRELLA":       Umbrella,
	"SNAKE":          Snake,
}
