package dialogue

// Pool keys, also the keys of a YAML pack override.
const (
	poolAcceptPositive  = "accept_positive"
	poolAcceptNeutral   = "accept_neutral"
	poolAcceptReluctant = "accept_reluctant"

	poolCounterGreedy     = "counter_greedy_high"
	poolCounterHonest     = "counter_honest_fair"
	poolCounterImpulsive  = "counter_impulsive_emotional"
	poolCounterFrustrated = "counter_frustrated"
	poolCounterSuspicious = "counter_suspicious"

	poolRejectPolite   = "reject_polite"
	poolRejectAnnoyed  = "reject_annoyed"
	poolRejectOffended = "reject_offended"

	poolBluffDetected = "bluff_detected"
	poolGreeting      = "greeting"
)

func builtinPools() map[string][]string {
	return map[string][]string{
		poolAcceptPositive: {
			"Excellent! I think we have a deal at {price} coins. Pleasure doing business!",
			"That works for me! {price} coins it is. You drive a fair bargain.",
			"I like your style. {price} coins and the {item} is yours!",
			"Perfect! {price} coins is exactly what I was hoping for. Deal!",
		},
		poolAcceptNeutral: {
			"Alright, {price} coins. Deal.",
			"Fine. {price} coins. Let's close this.",
			"{price} coins is acceptable. We have an agreement.",
			"I can work with {price} coins. Done.",
		},
		poolAcceptReluctant: {
			"...Fine. {price} coins. But I'm not happy about it.",
			"You're pushing hard, but okay. {price} coins.",
			"Against my better judgment, {price} coins. Deal.",
			"I shouldn't do this, but... {price} coins. Take it.",
		},

		poolCounterGreedy: {
			"Ha! {offer} coins? I'm thinking more like {counter} coins.",
			"Nice try. This {item} is worth {counter} coins at least.",
			"You're funny. Counter: {counter} coins.",
			"{offer}? Not even close. I need {counter} coins for this beauty.",
		},
		poolCounterHonest: {
			"I appreciate the offer, but {counter} coins is closer to fair value.",
			"Let's be reasonable. How about {counter} coins?",
			"I can meet you at {counter} coins. That's fair for both of us.",
			"I understand your position. {counter} coins is my counteroffer.",
		},
		poolCounterImpulsive: {
			"Whoa! {counter} coins! Take it or leave it!",
			"Nah, nah, nah. {counter} coins. Right now!",
			"I'm feeling {counter} coins. What do you say?",
			"Okay okay, {counter} coins! But you need to decide fast!",
		},
		poolCounterFrustrated: {
			"We're wasting time. {counter} coins is my offer.",
			"Look, I'll go to {counter} coins but we need to wrap this up.",
			"I'm losing patience. {counter} coins. Final offer soon.",
			"This is taking too long. {counter} coins. Take it.",
		},
		poolCounterSuspicious: {
			"I'm not sure I trust your assessment. {counter} coins.",
			"Something feels off here. I'll counter with {counter} coins.",
			"You're playing games. {counter} coins, and I'm watching you.",
			"I don't like this. {counter} coins is my counter.",
		},

		poolRejectPolite: {
			"I'm sorry, but I can't accept that. Let's try another time.",
			"We couldn't reach an agreement. Perhaps next time.",
			"I respect your position, but I have to decline.",
			"Unfortunately, we're too far apart. Maybe another deal.",
		},
		poolRejectAnnoyed: {
			"This isn't working. I'm done here.",
			"No deal. We're too far apart.",
			"Forget it. I can't do this anymore.",
			"I'm out. This is a waste of time.",
		},
		poolRejectOffended: {
			"Are you serious? That's insulting. We're done.",
			"I don't appreciate being played with. No deal.",
			"You've wasted my time with ridiculous offers. Goodbye.",
			"That's it. Your offers are an insult. I'm walking.",
		},

		poolBluffDetected: {
			"I can tell you're not being straight with me. That affects my trust.",
			"Those wild offers aren't helping your case.",
			"You keep changing your story. I'm getting suspicious.",
			"Stop playing games. Your inconsistency is noted.",
		},

		poolGreeting: {
			"Welcome! Let's talk business.",
			"Good to see you. What's your offer?",
			"I'm listening. Make your pitch.",
			"Alright, let's negotiate.",
		},
	}
}
