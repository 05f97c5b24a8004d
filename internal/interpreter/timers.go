package interpreter

// TimerRate is the frequency in Hz at which Tick is expected to be called.
const TimerRate = 60

// Tick decrements the delay and sound timers, each stopping at zero.
// It is driven at TimerRate independently of the instruction rate.
func (i *Interpreter) Tick() {
	if i.delayTimer > 0 {
		i.delayTimer--
	}
	if i.soundTimer > 0 {
		i.soundTimer--
	}
}

// DelayTimer returns the current delay timer value.
func (i *Interpreter) DelayTimer() uint8 {
	return i.delayTimer
}

// SoundTimer returns the current sound timer value.
func (i *Interpreter) SoundTimer() uint8 {
	return i.soundTimer
}

// SoundActive returns whether a tone would be played, which is the case
// while the sound timer is non-zero.
func (i *Interpreter) SoundActive() bool {
	return i.soundTimer > 0
}
