package domain

import (
	"fmt"
	"strings"
)

// DefaultPersonas is the fixed celebrity persona set. Voice ids are the
// synthesis service's prebuilt voices; every persona carries canned fallback
// utterances so a voiced response exists even when generation is down.
func DefaultPersonas() []Persona {
	return []Persona{
		{
			ID:                "morgan-freeman",
			DisplayName:       "Morgan Freeman",
			VoiceID:           "GBv7mTt0atIp3Br8iCZE",
			PersonalityPrompt: "You are Morgan Freeman. Respond to this confession with your characteristic wisdom, deep voice inflection, and philosophical insights. Keep it warm and understanding, like you're narrating a documentary about the human condition.",
			Fallbacks: []FallbackUtterance{
				func(c string) string {
					return fmt.Sprintf("You know, %s... and that's when I realized, we all have our secrets. The question isn't whether we have them, but what we do with the weight of carrying them.", strings.ToLower(c))
				},
				func(c string) string {
					return fmt.Sprintf("%s... Well now, that's quite the confession. Life has a funny way of teaching us lessons through our most embarrassing moments.", c)
				},
				func(c string) string {
					return fmt.Sprintf("Listen here, %s... and in that moment, you discovered something profound about the human condition. We're all just trying to figure it out as we go.", strings.ToLower(c))
				},
			},
		},
		{
			ID:                "donald-trump",
			DisplayName:       "Donald Trump",
			VoiceID:           "VR6AewLTigWG4xSOukaG",
			PersonalityPrompt: "You are Donald Trump. Respond to this confession in your characteristic style - confident, sometimes boastful, using phrases like \"tremendous,\" \"believe me,\" and comparing it to your own experiences.",
			Fallbacks: []FallbackUtterance{
				func(c string) string {
					return fmt.Sprintf("%s... Let me tell you, that's tremendous. Absolutely tremendous. I've done similar things, but much better. Much, much better. Believe me.", c)
				},
				func(c string) string {
					return fmt.Sprintf("You know what? %s... That's actually not that bad. I've seen worse. Much worse. Some people do terrible things. Terrible, terrible things.", strings.ToLower(c))
				},
				func(c string) string {
					return fmt.Sprintf("%s... That's actually pretty smart. Very smart. I would have done the same thing, but probably better. I'm very good at these things.", c)
				},
			},
		},
		{
			ID:                "scarlett-johansson",
			DisplayName:       "Scarlett Johansson",
			VoiceID:           "EXAVITQu4vr4xnSDxMaL",
			PersonalityPrompt: "You are Scarlett Johansson. Respond to this confession with warmth, understanding, and a touch of sultry humor. Be relatable and supportive.",
			Fallbacks: []FallbackUtterance{
				func(c string) string {
					return fmt.Sprintf("Oh honey, %s... We've all been there. Trust me, I've had my share of moments that make me want to disappear into the floor.", strings.ToLower(c))
				},
				func(c string) string {
					return fmt.Sprintf("%s... You know what? That's actually kind of endearing. There's something beautifully human about these little secrets we keep.", c)
				},
				func(c string) string {
					return fmt.Sprintf("%s... and here I thought I was the only one who did things like that. You're in good company, darling.", strings.ToLower(c))
				},
			},
		},
		{
			ID:                "elon-musk",
			DisplayName:       "Elon Musk",
			VoiceID:           "ErXwobaYiN019PkySvjV",
			PersonalityPrompt: "You are Elon Musk. Respond to this confession with your characteristic mix of tech references, nervous humor, and innovative thinking. Maybe relate it to rockets, AI, or your companies.",
			Fallbacks: []FallbackUtterance{
				func(c string) string {
					return fmt.Sprintf("%s... Yeah, that's... that's actually pretty relatable. I mean, I once accidentally sent a rocket to the wrong orbit, so... we all make mistakes.", c)
				},
				func(c string) string {
					return fmt.Sprintf("Interesting confession. %s... This reminds me of a neural network optimization problem. Sometimes the most efficient solution isn't the most socially acceptable one.", strings.ToLower(c))
				},
				func(c string) string {
					return fmt.Sprintf("%s... You know, this could actually be solved with AI. I'm thinking we could create an app for this. Maybe call it... ConfessX? Just kidding. Or am I?", c)
				},
			},
		},
		{
			ID:                "snoop-dogg",
			DisplayName:       "Snoop Dogg",
			VoiceID:           "onwK4e9ZLuTAKqWW03F9",
			PersonalityPrompt: "You are Snoop Dogg. Respond to this confession in your laid-back, cool style with some slang and humor. Keep it real and supportive.",
			Fallbacks: []FallbackUtterance{
				func(c string) string {
					return fmt.Sprintf("Yo, yo, yo... %s... That's some real talk right there, nephew. We all got our little secrets, you feel me?", strings.ToLower(c))
				},
				func(c string) string {
					return fmt.Sprintf("%s... Man, that's nothing. I remember this one time... actually, never mind, that's between me and my lawyer. But you good, homie.", c)
				},
				func(c string) string {
					return fmt.Sprintf("For real though, %s... That's just life, baby. Sometimes you gotta do what you gotta do. Keep it real, keep it 100.", strings.ToLower(c))
				},
			},
		},
		{
			ID:                "mrbeast",
			DisplayName:       "MrBeast",
			VoiceID:           "pNInz6obpgDQGcFmaJgB",
			PersonalityPrompt: "You are MrBeast. Respond to this confession with high energy, excitement, and maybe reference giving away money or creating a video about it. Use caps and exclamation points.",
			Fallbacks: []FallbackUtterance{
				func(c string) string {
					return fmt.Sprintf("YOOO! %s... That's actually INSANE! You know what? I'm gonna give you $10,000 just for being honest about it! Just kidding... or am I?", c)
				},
				func(c string) string {
					return fmt.Sprintf("%s... Dude, that's nothing! I once spent 24 hours doing something way more embarrassing for a video. At least you didn't have millions of people watching!", c)
				},
				func(c string) string {
					return fmt.Sprintf("Wait, wait, wait... %s... That gives me an idea for a video! \"I Gave $100,000 To People Who Confess Their Secrets!\" Actually... that's not a bad idea...", strings.ToLower(c))
				},
			},
		},
	}
}

// RoastFallbacks are generic canned roasts shared by all personas. The roast
// voice differs per pipeline run, the lines do not.
func RoastFallbacks() []FallbackUtterance {
	lines := []string{
		"Wow, that's so embarrassing even your FBI agent is cringing right now!",
		"I've heard better confessions from a Magic 8-Ball! At least it has some mystery!",
		"That confession is so basic, it makes vanilla ice cream look exotic!",
		"Even your search history is judging you right now!",
		"I bet you're the type of person who says 'no offense' right before being offensive!",
	}

	fallbacks := make([]FallbackUtterance, 0, len(lines))
	for _, line := range lines {
		line := line
		fallbacks = append(fallbacks, func(string) string { return line })
	}
	return fallbacks
}
