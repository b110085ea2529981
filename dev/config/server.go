package config

const SERVER_YML = `
rolodex:
  listener:
    port: 5000

sqlite:
  passPhrase: passphrase
`
