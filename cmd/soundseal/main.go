package main

import (
	"fmt"
	"os"

	"github.com/absfs/osfs"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/soundseal/soundseal"
	"github.com/soundseal/soundseal/store"
	"github.com/soundseal/soundseal/wav"
)

const version = "0.1.0"

func main() {
	app := cli.NewApp()
	app.Name = "soundseal"
	app.Usage = "Encrypt audio into PNG artifacts and back"
	app.Version = version
	app.Commands = []cli.Command{
		encryptCommand(),
		decryptCommand(),
		strengthCommand(),
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func encryptCommand() cli.Command {
	return cli.Command{
		Name:      "encrypt",
		Usage:     "encrypt a mono WAV file into a PNG artifact",
		ArgsUsage: "WAVFILE",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "out, o",
				Usage: "write the artifact to `FILE` (default: soundseal-<id>.png)",
			},
			passphraseFlag(),
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.NewExitError("encrypt: expected exactly one WAV file argument", 2)
			}
			input := c.Args().First()

			passphrase, err := resolvePassphrase(c, true)
			if err != nil {
				return err
			}

			f, err := os.Open(input)
			if err != nil {
				return err
			}
			samples, sampleRate, err := wav.Decode(f)
			f.Close()
			if err != nil {
				return err
			}

			sealer, err := soundseal.NewSealer(nil)
			if err != nil {
				return err
			}

			clip := &soundseal.Clip{Samples: samples, SampleRate: sampleRate}
			log.WithFields(log.Fields{
				"samples":  len(samples),
				"rate":     sampleRate,
				"duration": clip.Duration().Round(1e6),
			}).Info("encrypting clip")

			img, err := sealer.Seal(clip, passphrase)
			if err != nil {
				return err
			}

			out := c.String("out")
			if out == "" {
				out = store.DefaultArtifactName()
			}

			artifacts, err := artifactStore()
			if err != nil {
				return err
			}
			if err := artifacts.WriteArtifact(out, img); err != nil {
				return err
			}

			log.WithFields(log.Fields{
				"artifact": out,
				"width":    img.Rect.Dx(),
				"height":   img.Rect.Dy(),
			}).Info("artifact written")
			return nil
		},
	}
}

func decryptCommand() cli.Command {
	return cli.Command{
		Name:      "decrypt",
		Usage:     "decrypt a PNG artifact back into a mono WAV file",
		ArgsUsage: "PNGFILE",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "out, o",
				Usage: "write the decrypted audio to `FILE`",
				Value: "decrypted.wav",
			},
			passphraseFlag(),
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.NewExitError("decrypt: expected exactly one PNG file argument", 2)
			}
			input := c.Args().First()

			passphrase, err := resolvePassphrase(c, false)
			if err != nil {
				return err
			}

			artifacts, err := artifactStore()
			if err != nil {
				return err
			}
			img, err := artifacts.ReadArtifact(input)
			if err != nil {
				return err
			}

			sealer, err := soundseal.NewSealer(nil)
			if err != nil {
				return err
			}

			clip, err := sealer.Unseal(img, passphrase)
			if err != nil {
				// One generic outcome for format and authentication
				// failures; the distinction would only help an attacker
				// probing keys.
				if soundseal.IsFormatError(err) || soundseal.IsAuthenticationError(err) {
					log.Debug(err)
					return cli.NewExitError("decryption failed: wrong passphrase or corrupted artifact", 1)
				}
				return err
			}

			out := c.String("out")
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := wav.Encode(f, clip.Samples, clip.SampleRate); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			log.WithFields(log.Fields{
				"output":   out,
				"samples":  len(clip.Samples),
				"rate":     clip.SampleRate,
				"duration": clip.Duration().Round(1e6),
			}).Info("clip decrypted")
			return nil
		},
	}
}

func strengthCommand() cli.Command {
	return cli.Command{
		Name:      "strength",
		Usage:     "score a passphrase without encrypting anything",
		ArgsUsage: "PASSPHRASE",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.NewExitError("strength: expected exactly one passphrase argument", 2)
			}

			s := soundseal.ScorePassphrase(c.Args().First())
			fmt.Printf("%s (score %d)\n", s.Level, s.Score)
			if !s.AllowsEncryption() {
				return cli.NewExitError("this passphrase would be refused for encryption", 1)
			}
			return nil
		},
	}
}

func artifactStore() (*store.Store, error) {
	base, err := osfs.NewFS()
	if err != nil {
		return nil, err
	}
	return store.New(base)
}
