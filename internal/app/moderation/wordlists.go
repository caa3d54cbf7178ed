/*
Package moderation classifies chat text against category word lists.

This file holds the three category word lists. Entries are written in plain
lowercase; spacing and hyphens are irrelevant because every entry is reduced
to letters only before matching.
*/
package moderation

// profanityWords lists general profanity, mild to strong.
var profanityWords = []string{
	"arse",
	"arsehead",
	"arsehole",
	"ass",
	"asshole",
	"ass hole",
	"bastard",
	"bitch",
	"bollocks",
	"bullshit",
	"crap",
	"dammit",
	"damned",
	"dick",
	"dickhead",
	"dick-head",
	"dumbass",
	"dumb ass",
	"dumb-ass",
	"holyshit",
	"horseshit",
	"inshit",
}

// slurWords lists hate speech and slurs.
var slurWords = []string{
	"fag",
	"faggot",
	"nigga",
	"nigra",
	"elijah",
	"logan",
}

// sexualWords lists sexual and explicit content.
var sexualWords = []string{
	"childfucker",
	"child-fucker",
	"cock",
	"cocksucker",
	"cunt",
	"fatherfucker",
	"father-fucker",
	"fuck",
	"fucked",
	"fucker",
	"fucking",
	"godsdamn",
	"goddamn",
	"god damn",
	"goddammit",
	"goddamnit",
	"goddamned",
	"motherfucker",
	"mother fucker",
	"mother-fucker",
	"sex",
}
